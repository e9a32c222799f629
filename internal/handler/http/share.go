package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createShare(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	var req models.ShareCreateRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid share body")
		return
	}

	resp, err := h.services.ShareService.Create(r.Context(), uid, req)
	if err != nil {
		writeError(w, r, err, "creating shared secret failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// consumeShare is public: possession of the token is the authorization.
func (h *Handler) consumeShare(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ShareService.Consume(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, r, err, "consuming shared secret failed")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) listShares(w http.ResponseWriter, r *http.Request) {
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

	secrets, err := h.services.ShareService.List(r.Context(), uid, page)
	if err != nil {
		writeError(w, r, err, "listing shared secrets failed")
		return
	}

	utils.WriteJSON(w, secrets, http.StatusOK)
}

func (h *Handler) revokeShare(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid share request")
		return
	}

	if err = h.services.ShareService.Revoke(r.Context(), uid, id); err != nil {
		writeError(w, r, err, "revoking shared secret failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
