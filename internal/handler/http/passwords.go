package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
)

func (h *Handler) createPassword(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	var in models.PasswordInput
	if err = decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "invalid password body")
		return
	}

	created, err := h.services.PasswordService.Create(r.Context(), uid, in)
	if err != nil {
		writeError(w, r, err, "creating password failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listPasswords(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, "invalid paging")
		return
	}

	passwords, err := h.services.PasswordService.List(r.Context(), uid, page)
	if err != nil {
		writeError(w, r, err, "listing passwords failed")
		return
	}

	utils.WriteJSON(w, passwords, http.StatusOK)
}

func (h *Handler) getPassword(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid password request")
		return
	}

	password, err := h.services.PasswordService.Get(r.Context(), uid, id)
	if err != nil {
		writeError(w, r, err, "getting password failed")
		return
	}

	utils.WriteJSON(w, password, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid password request")
		return
	}

	var upd models.PasswordUpdate
	if err = decodeJSON(r, &upd); err != nil {
		writeError(w, r, err, "invalid password update body")
		return
	}

	updated, err := h.services.PasswordService.Update(r.Context(), uid, id, upd)
	if err != nil {
		writeError(w, r, err, "updating password failed")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePassword(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid password request")
		return
	}

	if err = h.services.PasswordService.Delete(r.Context(), uid, id); err != nil {
		writeError(w, r, err, "deleting password failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revealPassword(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid password request")
		return
	}

	revealed, err := h.services.PasswordService.Reveal(r.Context(), uid, id)
	if err != nil {
		writeError(w, r, err, "revealing password failed")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, revealed, http.StatusOK)
}

// ownedID returns the caller and the {id} path parameter.
func ownedID(r *http.Request) (int64, int64, error) {
	uid, err := userID(r)
	if err != nil {
		return 0, 0, err
	}
	id, err := pathID(r, "id")
	if err != nil {
		return 0, 0, err
	}
	return uid, id, nil
}
