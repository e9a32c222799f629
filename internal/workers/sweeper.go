// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pass-god/internal/logger"
)

const sweepTimeout = 10 * time.Second

// SharedSecretSweeper purges share records nobody can consume any more:
// unused ones past their expiry and consumed ones older than retention.
// Expired records are already unreadable, so sweeping only reclaims space.
type SharedSecretSweeper struct {
	store     SharedSecretPurger
	interval  time.Duration
	retention time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewSharedSecretSweeper(store SharedSecretPurger, interval, retention time.Duration, logger *logger.Logger) *SharedSecretSweeper {
	return &SharedSecretSweeper{
		store:     store,
		interval:  interval,
		retention: retention,
		now:       time.Now,
		logger:    logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
func (s *SharedSecretSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Error().Dur("interval", s.interval).Msg("shared secret sweeper disabled: interval must be positive")
		return
	}

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SharedSecretSweeper) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	now := s.now().UTC()
	deleted, err := s.store.DeleteExpiredSharedSecrets(sweepCtx, now, now.Add(-s.retention))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		s.logger.Err(err).Msg("sweeping shared secrets failed")
		return
	}
	if deleted > 0 {
		s.logger.Info().Int64("count", deleted).Msg("expired shared secrets purged")
	}
}
