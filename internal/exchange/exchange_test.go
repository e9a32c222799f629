package exchange

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-god/internal/utils"
	"github.com/MKhiriev/go-pass-god/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore mirrors the conditional update of the Postgres repository
// under a mutex.
type memoryStore struct {
	mu      sync.Mutex
	nextID  int64
	secrets map[string]*models.SharedSecret

	createErr  error
	consumeErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{secrets: make(map[string]*models.SharedSecret)}
}

func (m *memoryStore) CreateSharedSecret(_ context.Context, s models.SharedSecret) (models.SharedSecret, error) {
	if m.createErr != nil {
		return models.SharedSecret{}, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.SharedSecretID = m.nextID
	m.secrets[s.TokenHash] = &s
	return s, nil
}

func (m *memoryStore) ConsumeSharedSecret(_ context.Context, tokenHash string, now time.Time) (string, bool, error) {
	if m.consumeErr != nil {
		return "", false, m.consumeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.secrets[tokenHash]
	if !ok || s.Used || !s.ExpiresAt.After(now) {
		return "", false, nil
	}
	s.Used = true
	s.UsedAt = &now
	return s.EncryptedData, true, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func intPtr(v int) *int { return &v }

func newTestExchange(store Store, clock *fakeClock) *Exchange {
	return New(store, 60*time.Minute, 7*24*time.Hour, WithClock(clock.Now))
}

func TestExchange_CreateConsumeOnce(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	ex := newTestExchange(newMemoryStore(), clock)
	ctx := context.Background()

	ticket, err := ex.Create(ctx, 1, "abc", intPtr(60))
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(60*time.Minute), ticket.ExpiresAt)

	got, err := ex.Consume(ctx, ticket.Token)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	_, err = ex.Consume(ctx, ticket.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExchange_TokenShapeAndStorage(t *testing.T) {
	store := newMemoryStore()
	ex := New(store, time.Hour, 24*time.Hour)

	ticket, err := ex.Create(context.Background(), 7, "payload", nil)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(ticket.Token)
	require.NoError(t, err)
	assert.Len(t, raw, tokenBytes)
	assert.False(t, strings.ContainsAny(ticket.Token, "+/="))

	stored, ok := store.secrets[utils.HashToken(ticket.Token)]
	require.True(t, ok, "record must be keyed by the token digest")
	assert.NotEqual(t, ticket.Token, stored.TokenHash)
	assert.Equal(t, int64(7), stored.CreatedBy)
	assert.Equal(t, ticket.ID, stored.SharedSecretID)
}

func TestExchange_DefaultTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	ex := newTestExchange(newMemoryStore(), clock)

	ticket, err := ex.Create(context.Background(), 1, "p", nil)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(60*time.Minute), ticket.ExpiresAt)
}

func TestExchange_ZeroTTLIsInert(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	ex := newTestExchange(newMemoryStore(), clock)
	ctx := context.Background()

	ticket, err := ex.Create(ctx, 1, "p", intPtr(0))
	require.NoError(t, err)

	_, err = ex.Consume(ctx, ticket.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExchange_ExpiredNeverConsumed(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	ex := newTestExchange(newMemoryStore(), clock)
	ctx := context.Background()

	ticket, err := ex.Create(ctx, 1, "p", intPtr(5))
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	_, err = ex.Consume(ctx, ticket.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExchange_UnknownTokens(t *testing.T) {
	ex := New(newMemoryStore(), time.Hour, 24*time.Hour)

	for _, token := range []string{"", "nope", strings.Repeat("A", 43)} {
		_, err := ex.Consume(context.Background(), token)
		assert.ErrorIs(t, err, ErrNotFound, "token %q", token)
	}
}

func TestExchange_ConcurrentConsumersExactlyOneWins(t *testing.T) {
	ex := New(newMemoryStore(), time.Hour, 24*time.Hour)
	ctx := context.Background()

	ticket, err := ex.Create(ctx, 1, "only-once", nil)
	require.NoError(t, err)

	const consumers = 64
	var (
		wg       sync.WaitGroup
		start    = make(chan struct{})
		winners  atomic.Int32
		notFound atomic.Int32
	)
	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			payload, err := ex.Consume(ctx, ticket.Token)
			switch {
			case err == nil:
				assert.Equal(t, "only-once", payload)
				winners.Add(1)
			case errors.Is(err, ErrNotFound):
				notFound.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
	assert.Equal(t, int32(consumers-1), notFound.Load())
}

func TestExchange_InvalidInput(t *testing.T) {
	ex := New(newMemoryStore(), time.Hour, 24*time.Hour)
	ctx := context.Background()

	_, err := ex.Create(ctx, 1, "", nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = ex.Create(ctx, 1, "p", intPtr(-1))
	assert.ErrorIs(t, err, ErrInvalidTTL)

	_, err = ex.Create(ctx, 1, "p", intPtr(24*60+1))
	assert.ErrorIs(t, err, ErrInvalidTTL)

	// minute counts whose nanosecond product wraps int64
	for _, minutes := range []int{153722868, 307445735} {
		_, err = ex.Create(ctx, 1, "p", intPtr(minutes))
		assert.ErrorIs(t, err, ErrInvalidTTL, "ttl of %d minutes", minutes)
	}

	_, err = ex.Create(ctx, 1, "p", intPtr(24*60))
	assert.NoError(t, err)
}

func TestExchange_UncappedTTLStillRejectsOverflow(t *testing.T) {
	ex := New(newMemoryStore(), time.Hour, 0)
	ctx := context.Background()

	_, err := ex.Create(ctx, 1, "p", intPtr(153722868))
	assert.ErrorIs(t, err, ErrInvalidTTL)

	ticket, err := ex.Create(ctx, 1, "p", intPtr(365*24*60))
	require.NoError(t, err)
	assert.True(t, ticket.ExpiresAt.After(time.Now().Add(364*24*time.Hour)))
}

func TestExchange_StorageErrorsAreNotNotFound(t *testing.T) {
	boom := errors.New("connection reset")
	store := newMemoryStore()
	ex := New(store, time.Hour, 24*time.Hour)
	ctx := context.Background()

	store.createErr = boom
	_, err := ex.Create(ctx, 1, "p", nil)
	assert.ErrorIs(t, err, boom)

	store.createErr = nil
	store.consumeErr = boom
	_, err = ex.Consume(ctx, "token")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}
