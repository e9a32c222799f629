// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and verifies stateless session tokens.
//
// Tokens are HS256-signed JWTs carrying the subject, expiry, issued-at,
// issuer and a "typ" discriminator. There is no revocation list: a token
// stays valid until it expires, whatever happens to the account meanwhile.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TypeAccess is the "typ" claim of session tokens.
const TypeAccess = "access"

// Claims is the payload of a session token.
type Claims struct {
	jwt.RegisteredClaims
	Type string `json:"typ"`
}

// Issued is a freshly signed token.
type Issued struct {
	Token     string
	ExpiresAt time.Time
}

// Issuer signs and verifies session tokens with a server-held key. It is
// immutable after construction and safe for concurrent use.
type Issuer struct {
	signKey    []byte
	issuer     string
	defaultTTL time.Duration
	now        func() time.Time
}

// Option customises an Issuer.
type Option func(*Issuer)

// WithClock replaces the time source, used by tests to simulate expiry.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

// NewIssuer builds an Issuer. signKey is copied, so later changes to the
// caller's slice do not affect issued or verified tokens.
func NewIssuer(signKey []byte, issuer string, defaultTTL time.Duration, opts ...Option) (*Issuer, error) {
	if len(signKey) == 0 || issuer == "" || defaultTTL <= 0 {
		return nil, ErrInvalidIssuerConfig
	}

	i := &Issuer{
		signKey:    append([]byte(nil), signKey...),
		issuer:     issuer,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// DefaultTTL returns the lifetime used when Issue is called with ttl <= 0.
func (i *Issuer) DefaultTTL() time.Duration {
	return i.defaultTTL
}

// Issue signs a token for subject valid for ttl; ttl <= 0 selects the
// default lifetime.
func (i *Issuer) Issue(subject string, ttl time.Duration) (Issued, error) {
	if subject == "" {
		return Issued{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	if ttl <= 0 {
		ttl = i.defaultTTL
	}

	now := i.now()
	expiresAt := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Type: TypeAccess,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signKey)
	if err != nil {
		return Issued{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return Issued{Token: signed, ExpiresAt: expiresAt}, nil
}

// Verify checks the signature, issuer, type and expiry of tokenString and
// returns its claims. The signature is checked before any claim, so an
// expired token with a bad signature is reported as ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)

	_, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return i.signKey, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrExpiredToken
	default:
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Type != TypeAccess || claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}

// Subject verifies tokenString and returns only its subject.
func (i *Issuer) Subject(tokenString string) (string, error) {
	claims, err := i.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
