package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-god/internal/adapter"
	"github.com/MKhiriev/go-pass-god/internal/crypto"
	"github.com/MKhiriev/go-pass-god/internal/exchange"
	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/MKhiriev/go-pass-god/internal/service"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/internal/token"
	"github.com/MKhiriev/go-pass-god/internal/utils"
)

// errorStatusMap is checked in order, so wrapped validation errors are
// matched before the storage errors they may also carry.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidPathParam, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},
	{exchange.ErrInvalidTTL, http.StatusBadRequest},
	{exchange.ErrEmptyPayload, http.StatusBadRequest},
	{service.ErrIncorrectPassword, http.StatusBadRequest},
	{service.ErrInvalidUnlockMethod, http.StatusBadRequest},
	{store.ErrNothingToUpdate, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidPIN, http.StatusUnauthorized},
	{service.ErrInvalidPattern, http.StatusUnauthorized},
	{token.ErrExpiredToken, http.StatusUnauthorized},
	{token.ErrInvalidToken, http.StatusUnauthorized},

	{service.ErrInactiveUser, http.StatusForbidden},
	{service.ErrStorageLocked, http.StatusForbidden},
	{service.ErrAdminRequired, http.StatusForbidden},

	{exchange.ErrNotFound, http.StatusNotFound},
	{service.ErrStorageNotFound, http.StatusNotFound},
	{store.ErrNotFound, http.StatusNotFound},

	{store.ErrAlreadyExists, http.StatusConflict},

	{crypto.ErrDecryption, http.StatusInternalServerError},
	{adapter.ErrBreachCheckUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError renders the client-facing message. Server-side failures
// never leak their cause.
func detailFromError(err error) string {
	if errors.Is(err, service.ErrInvalidDataProvided) {
		return err.Error()
	}
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			if e.status >= http.StatusInternalServerError && e.status != http.StatusServiceUnavailable {
				return detailInternal
			}
			return e.target.Error()
		}
	}
	return detailInternal
}

// writeError logs err with msg and answers with the mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteDetail(w, detailFromError(err), status)
}
