package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/utils"
)

func (h *Handler) adminListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, "invalid paging")
		return
	}

	users, err := h.services.AdminService.ListUsers(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "listing users failed")
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	if err = h.services.AdminService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err, "deleting user failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminListBreaches(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, "invalid paging")
		return
	}

	alerts, err := h.services.AdminService.ListBreaches(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "listing breaches failed")
		return
	}

	utils.WriteJSON(w, alerts, http.StatusOK)
}
