package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	var in models.NoteInput
	if err = decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "invalid note body")
		return
	}

	created, err := h.services.NoteService.Create(r.Context(), uid, in)
	if err != nil {
		writeError(w, r, err, "creating note failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
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

	notes, err := h.services.NoteService.List(r.Context(), uid, page)
	if err != nil {
		writeError(w, r, err, "listing notes failed")
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid note request")
		return
	}

	note, err := h.services.NoteService.Get(r.Context(), uid, id)
	if err != nil {
		writeError(w, r, err, "getting note failed")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid note request")
		return
	}

	var upd models.NoteUpdate
	if err = decodeJSON(r, &upd); err != nil {
		writeError(w, r, err, "invalid note update body")
		return
	}

	updated, err := h.services.NoteService.Update(r.Context(), uid, id, upd)
	if err != nil {
		writeError(w, r, err, "updating note failed")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid note request")
		return
	}

	if err = h.services.NoteService.Delete(r.Context(), uid, id); err != nil {
		writeError(w, r, err, "deleting note failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
