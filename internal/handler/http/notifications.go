package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
)

// listNotifications accepts ?unread_only=true to hide read entries.
func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
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
	unreadOnly, err := boolQuery(r, "unread_only")
	if err != nil {
		writeError(w, r, err, "invalid unread_only filter")
		return
	}

	filter := models.NotificationFilter{UserID: uid, Page: page}
	if unreadOnly != nil && *unreadOnly {
		read := false
		filter.Read = &read
	}

	notifications, err := h.services.NotificationService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "listing notifications failed")
		return
	}

	utils.WriteJSON(w, notifications, http.StatusOK)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid notification request")
		return
	}

	if err = h.services.NotificationService.MarkRead(r.Context(), uid, id); err != nil {
		writeError(w, r, err, "marking notification read failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Notification marked as read"}, http.StatusOK)
}
