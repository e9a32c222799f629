package token

import "errors"

var (
	// ErrInvalidToken covers bad signatures, foreign issuers, wrong
	// algorithms, wrong token types and malformed structure.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned only for tokens whose signature verified
	// but whose expiry has passed.
	ErrExpiredToken = errors.New("token is expired")
	// ErrInvalidIssuerConfig is returned by NewIssuer for unusable settings.
	ErrInvalidIssuerConfig = errors.New("invalid token issuer configuration")
	// ErrInvalidAuthorizationHeader is returned for headers that are not
	// of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
