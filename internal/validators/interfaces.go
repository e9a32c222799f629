// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request models and enforces the
// business rules of the vault before they reach the services.
//
// A [Validator] dispatches on the dynamic type of its argument. Optional
// field names restrict validation to a subset of fields, e.g. validating
// only the email of a registration request.
package validators

import "context"

// Validator validates an arbitrary request model, optionally restricted to
// the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
