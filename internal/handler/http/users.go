package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	user, err := h.services.UserService.Me(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "loading current user failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	var req models.UpdateUserRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid profile update body")
		return
	}

	user, err := h.services.UserService.UpdateMe(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err, "updating current user failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	if err = h.services.UserService.DeleteMe(r.Context(), id); err != nil {
		writeError(w, r, err, "deleting current user failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
