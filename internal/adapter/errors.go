package adapter

import "errors"

var (
	// ErrBreachCheckUnavailable means the provider could not answer: timeout,
	// transport failure, non-2xx other than 404 or an unreadable body.
	ErrBreachCheckUnavailable = errors.New("breach check unavailable")
	// ErrNotFound is the provider's 404, a valid empty result.
	ErrNotFound = errors.New("not found")
	// ErrInvalidBaseURL is returned by constructors for unusable provider URLs.
	ErrInvalidBaseURL = errors.New("invalid base url")
)
