package exchange

import "errors"

var (
	// ErrNotFound is the only consume failure callers observe. An unknown
	// token, an already consumed one and an expired one are not told apart.
	ErrNotFound = errors.New("invalid or expired")
	// ErrInvalidTTL rejects negative lifetimes and lifetimes above the cap.
	ErrInvalidTTL = errors.New("invalid ttl")
	// ErrEmptyPayload rejects secrets with no payload.
	ErrEmptyPayload = errors.New("empty payload")
)
