package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/token"
	"github.com/MKhiriev/go-pass-god/internal/utils"
)

// auth enforces bearer authentication. A missing header answers 401 "not
// authenticated", a malformed header or invalid token 401 "invalid
// credentials" and an expired token 401 "token is expired". Every 401
// carries WWW-Authenticate.
//
// On success the user id is stored in the request context and attached to
// the request logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := token.FromAuthorizationHeader(authHeader)
		if err != nil {
			log.Info().Err(err).Msg("malformed authorization header")
			unauthorized(w, detailInvalidCredentials)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpiredToken):
				log.Info().Err(err).Msg("token expired")
				unauthorized(w, token.ErrExpiredToken.Error())
			default:
				log.Info().Err(err).Msg("token rejected")
				unauthorized(w, detailInvalidCredentials)
			}
			return
		}

		ctx = utils.WithUserID(ctx, userID)
		ctx = logger.WithUserID(ctx, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// admin lets only active administrators through. It must run after auth.
func (h *Handler) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := userID(r)
		if err != nil {
			unauthorized(w, detailInvalidCredentials)
			return
		}

		user, err := h.services.UserService.Me(r.Context(), id)
		if err != nil {
			writeError(w, r, err, "loading caller for admin check failed")
			return
		}

		if !user.IsAdmin || !user.IsActive {
			logger.FromRequest(r).Warn().Msg("non-admin tried to reach admin route")
			utils.WriteDetail(w, detailAdminRequired, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteDetail(w, detail, http.StatusUnauthorized)
}
