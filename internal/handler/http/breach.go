package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
)

func (h *Handler) checkPasswords(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	report, err := h.services.BreachService.CheckPasswords(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, "checking passwords failed")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) checkEmail(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	alerts, err := h.services.BreachService.CheckEmail(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, "checking email failed")
		return
	}

	utils.WriteJSON(w, alerts, http.StatusOK)
}

// checkPassword answers 200 with the tri-state status even when the
// provider is down; "unavailable" is never reported as clean.
func (h *Handler) checkPassword(w http.ResponseWriter, r *http.Request) {
	var req models.CheckPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid check password body")
		return
	}
	if req.Password == "" {
		utils.WriteDetail(w, "password is required", http.StatusBadRequest)
		return
	}

	status := h.services.BreachService.CheckPassword(r.Context(), req.Password)
	utils.WriteJSON(w, models.CheckPasswordResponse{Status: status}, http.StatusOK)
}

func (h *Handler) listAlerts(w http.ResponseWriter, r *http.Request) {
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
	resolved, err := boolQuery(r, "resolved")
	if err != nil {
		writeError(w, r, err, "invalid resolved filter")
		return
	}

	alerts, err := h.services.BreachService.Alerts(r.Context(), models.AlertFilter{UserID: uid, Resolved: resolved, Page: page})
	if err != nil {
		writeError(w, r, err, "listing breach alerts failed")
		return
	}

	utils.WriteJSON(w, alerts, http.StatusOK)
}

func (h *Handler) resolveAlert(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid alert request")
		return
	}

	alert, err := h.services.BreachService.Resolve(r.Context(), uid, id)
	if err != nil {
		writeError(w, r, err, "resolving breach alert failed")
		return
	}

	utils.WriteJSON(w, alert, http.StatusOK)
}
