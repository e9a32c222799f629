// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("not authenticated")

	// ErrInvalidPathParam is returned when a numeric path parameter does not
	// parse as a positive id.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidQueryParam is returned for malformed skip, limit or filter
	// query parameters.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrInvalidJSON is returned when a request body does not decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	errNoUserInContext = errors.New("no user id in request context")
)

const (
	detailInvalidCredentials = "invalid credentials"
	detailAdminRequired      = "Admin access required"
	detailInternal           = "Internal server error"
	detailNotFound           = "Not Found"
)
