// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package exchange implements one-time, time-limited sharing of opaque
// payloads.
//
// Create hands out a 256-bit URL-safe token exactly once; only its SHA-256
// digest reaches storage. Consume is a single conditional update at the
// storage layer, so across any number of concurrent callers at most one
// receives the payload.
package exchange

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
)

// tokenBytes is the entropy of a share token.
const tokenBytes = 32

// Store persists shared secrets.
type Store interface {
	// CreateSharedSecret inserts secret and returns it with generated fields set.
	CreateSharedSecret(ctx context.Context, secret models.SharedSecret) (models.SharedSecret, error)
	// ConsumeSharedSecret marks the unused, unexpired record with tokenHash as
	// used in one atomic step and returns its payload. ok is false when no
	// row qualified.
	ConsumeSharedSecret(ctx context.Context, tokenHash string, now time.Time) (payload string, ok bool, err error)
}

// Ticket is the result of Create. Token is never stored and cannot be
// recovered later.
type Ticket struct {
	ID        int64
	Token     string
	ExpiresAt time.Time
}

// Exchange creates and consumes shared secrets.
type Exchange struct {
	store      Store
	defaultTTL time.Duration
	maxTTL     time.Duration
	now        func() time.Time
}

// Option customises an Exchange.
type Option func(*Exchange)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Exchange) {
		e.now = now
	}
}

// New builds an Exchange. defaultTTL applies when Create gets no ttl;
// maxTTL caps requested lifetimes.
func New(store Store, defaultTTL, maxTTL time.Duration, opts ...Option) *Exchange {
	e := &Exchange{
		store:      store,
		defaultTTL: defaultTTL,
		maxTTL:     maxTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Create stores payload for one consumption. ttlMinutes nil selects the
// default lifetime; zero yields a record that is already expired.
func (e *Exchange) Create(ctx context.Context, creatorID int64, payload string, ttlMinutes *int) (Ticket, error) {
	if payload == "" {
		return Ticket{}, ErrEmptyPayload
	}

	ttl, err := e.resolveTTL(ttlMinutes)
	if err != nil {
		return Ticket{}, err
	}

	token, err := newToken()
	if err != nil {
		return Ticket{}, err
	}

	now := e.now().UTC()
	created, err := e.store.CreateSharedSecret(ctx, models.SharedSecret{
		TokenHash:     utils.HashToken(token),
		EncryptedData: payload,
		ExpiresAt:     now.Add(ttl),
		CreatedBy:     creatorID,
		CreatedAt:     now,
	})
	if err != nil {
		return Ticket{}, fmt.Errorf("store shared secret: %w", err)
	}

	return Ticket{ID: created.SharedSecretID, Token: token, ExpiresAt: created.ExpiresAt}, nil
}

// Consume returns the payload of token and marks it used. Every failure to
// find a consumable record is ErrNotFound; storage errors are wrapped.
func (e *Exchange) Consume(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNotFound
	}

	payload, ok, err := e.store.ConsumeSharedSecret(ctx, utils.HashToken(token), e.now().UTC())
	if err != nil {
		return "", fmt.Errorf("consume shared secret: %w", err)
	}
	if !ok {
		return "", ErrNotFound
	}

	return payload, nil
}

func (e *Exchange) resolveTTL(ttlMinutes *int) (time.Duration, error) {
	if ttlMinutes == nil {
		return e.defaultTTL, nil
	}
	if *ttlMinutes < 0 {
		return 0, fmt.Errorf("%w: negative", ErrInvalidTTL)
	}

	// bound in whole minutes before converting so the product cannot overflow
	maxMinutes := int64(math.MaxInt64 / int64(time.Minute))
	if e.maxTTL > 0 {
		maxMinutes = int64(e.maxTTL / time.Minute)
	}
	if int64(*ttlMinutes) > maxMinutes {
		return 0, fmt.Errorf("%w: above %s", ErrInvalidTTL, e.maxTTL)
	}

	return time.Duration(*ttlMinutes) * time.Minute, nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
