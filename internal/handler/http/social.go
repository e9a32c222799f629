package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
)

func (h *Handler) createSocialAccount(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user id")
		return
	}

	var in models.SocialAccountInput
	if err = decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "invalid social account body")
		return
	}

	created, err := h.services.SocialAccountService.Create(r.Context(), uid, in)
	if err != nil {
		writeError(w, r, err, "creating social account failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listSocialAccounts(w http.ResponseWriter, r *http.Request) {
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

	accounts, err := h.services.SocialAccountService.List(r.Context(), uid, page)
	if err != nil {
		writeError(w, r, err, "listing social accounts failed")
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) getSocialAccount(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid social account request")
		return
	}

	account, err := h.services.SocialAccountService.Get(r.Context(), uid, id)
	if err != nil {
		writeError(w, r, err, "getting social account failed")
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) updateSocialAccount(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid social account request")
		return
	}

	var upd models.SocialAccountUpdate
	if err = decodeJSON(r, &upd); err != nil {
		writeError(w, r, err, "invalid social account update body")
		return
	}

	updated, err := h.services.SocialAccountService.Update(r.Context(), uid, id, upd)
	if err != nil {
		writeError(w, r, err, "updating social account failed")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSocialAccount(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid social account request")
		return
	}

	if err = h.services.SocialAccountService.Delete(r.Context(), uid, id); err != nil {
		writeError(w, r, err, "deleting social account failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revealSocialAccount(w http.ResponseWriter, r *http.Request) {
	uid, id, err := ownedID(r)
	if err != nil {
		writeError(w, r, err, "invalid social account request")
		return
	}

	revealed, err := h.services.SocialAccountService.Reveal(r.Context(), uid, id)
	if err != nil {
		writeError(w, r, err, "revealing social account password failed")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, revealed, http.StatusOK)
}

func (h *Handler) supportedPlatforms(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.SocialAccountService.Platforms(r.Context()), http.StatusOK)
}
