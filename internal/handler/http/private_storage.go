package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
)

func (h *Handler) privateStorageStatus(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	status, err := h.services.PrivateStorageService.Status(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, "getting private storage status failed")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) setupPrivateStorage(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	var req models.LockRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid setup body")
		return
	}

	status, err := h.services.PrivateStorageService.Setup(r.Context(), uid, req)
	if err != nil {
		writeError(w, r, err, "setting up private storage failed")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) unlockPrivateStorage(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	var req models.LockRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid unlock body")
		return
	}

	if err = h.services.PrivateStorageService.Unlock(r.Context(), uid, req); err != nil {
		writeError(w, r, err, "unlocking private storage failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Storage unlocked successfully"}, http.StatusOK)
}

func (h *Handler) lockPrivateStorage(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	if err = h.services.PrivateStorageService.Lock(r.Context(), uid); err != nil {
		writeError(w, r, err, "locking private storage failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Storage locked successfully"}, http.StatusOK)
}

func (h *Handler) createPrivateItem(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	var in models.PrivateItemInput
	if err = decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "invalid private item body")
		return
	}

	item, err := h.services.PrivateStorageService.CreateItem(r.Context(), uid, in)
	if err != nil {
		writeError(w, r, err, "creating private item failed")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) listPrivateItems(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	var itemType *string
	if v := r.URL.Query().Get("item_type"); v != "" {
		itemType = &v
	}

	items, err := h.services.PrivateStorageService.ListItems(r.Context(), uid, itemType)
	if err != nil {
		writeError(w, r, err, "listing private items failed")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) deletePrivateItem(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid private item request")
		return
	}

	if err = h.services.PrivateStorageService.DeleteItem(r.Context(), uid, id); err != nil {
		writeError(w, r, err, "deleting private item failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Item deleted successfully"}, http.StatusOK)
}
