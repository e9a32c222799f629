// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-god/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker records its runs and blocks until cancelled.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_RunAllUntilCancelled(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestWorkers_RunEmpty(t *testing.T) {
	NewWorkers().Run(context.Background())
}

type purgeCall struct {
	now, consumedBefore time.Time
}

type fakePurger struct {
	mu    sync.Mutex
	calls []purgeCall
	err   error
}

func (f *fakePurger) DeleteExpiredSharedSecrets(_ context.Context, now, consumedBefore time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, purgeCall{now: now, consumedBefore: consumedBefore})
	return 2, f.err
}

func (f *fakePurger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestSharedSecretSweeper_SweepsOnStartAndOnTick(t *testing.T) {
	purger := &fakePurger{}
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	s := NewSharedSecretSweeper(purger, 10*time.Millisecond, time.Hour, logger.Nop())
	s.now = func() time.Time { return fixed }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	require.Eventually(t, func() bool { return purger.count() >= 2 }, time.Second, 5*time.Millisecond)

	purger.mu.Lock()
	first := purger.calls[0]
	purger.mu.Unlock()
	assert.Equal(t, fixed, first.now)
	assert.Equal(t, fixed.Add(-time.Hour), first.consumedBefore)
}

func TestSharedSecretSweeper_ErrorKeepsRunning(t *testing.T) {
	purger := &fakePurger{err: errors.New("db down")}

	s := NewSharedSecretSweeper(purger, 5*time.Millisecond, 0, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	require.Eventually(t, func() bool { return purger.count() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestSharedSecretSweeper_NonPositiveIntervalReturns(t *testing.T) {
	purger := &fakePurger{}
	s := NewSharedSecretSweeper(purger, 0, time.Hour, logger.Nop())

	s.Run(context.Background())

	assert.Zero(t, purger.count())
}
