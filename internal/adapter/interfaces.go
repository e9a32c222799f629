// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the server.
//
// The primary abstraction is [BreachAdapter], which decouples the service
// layer from the breach-lookup provider. The package ships an HTTP
// implementation ([NewHTTPBreachAdapter]) for the pwned-passwords range API
// and the breached-account API.
//
// Every failure other than a "not found" answer is reported as
// [ErrBreachCheckUnavailable] so callers can never mistake an outage for a
// clean result.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-god/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/breach_adapter_mock.go -package=mock

// BreachAdapter looks up passwords and accounts in known data breaches.
// Implementations must be safe for concurrent use and must not hold locks
// while waiting on the network.
type BreachAdapter interface {
	// PasswordIsBreached reports whether secret appears in a known breach.
	// Only a five character prefix of the SHA-1 digest of secret leaves the
	// process; the suffix comparison happens locally.
	PasswordIsBreached(ctx context.Context, secret string) (bool, error)

	// EmailBreaches lists the breaches email appears in. An unknown account
	// yields an empty slice and no error.
	EmailBreaches(ctx context.Context, email string) ([]models.BreachDescriptor, error)
}
