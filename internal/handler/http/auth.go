package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid registration body")
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// tokenForm implements the OAuth2 password grant: the email arrives as
// "username" in a form body.
func (h *Handler) tokenForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, ErrInvalidQueryParam, "invalid token form")
		return
	}

	h.issueToken(w, r, r.PostForm.Get("username"), r.PostForm.Get("password"))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid login body")
		return
	}

	h.issueToken(w, r, req.Email, req.Password)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, email, password string) {
	ctx := r.Context()

	user, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	resp, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}
