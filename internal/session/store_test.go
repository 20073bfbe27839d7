package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sel(store int) domain.Selection {
	return domain.Selection{Store: store, Grain: "AB"}
}

func TestStore_PutGet(t *testing.T) {
	s := NewStore(3, 0, nil)

	s.Put("a", sel(1))

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, sel(1), got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStore_PutReplaces(t *testing.T) {
	s := NewStore(3, 0, nil)

	s.Put("a", sel(1))
	s.Put("a", domain.Selection{Store: 2, Grain: "BC"})

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, domain.Selection{Store: 2, Grain: "BC"}, got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_SessionsIsolated(t *testing.T) {
	s := NewStore(10, 0, nil)

	s.Put("a", sel(1))
	s.Put("b", sel(2))

	a, _ := s.Get("a")
	b, _ := s.Get("b")
	assert.Equal(t, 1, a.Store)
	assert.Equal(t, 2, b.Store)
}

func TestStore_Eviction(t *testing.T) {
	s := NewStore(2, 0, nil)

	s.Put("a", sel(1))
	s.Put("b", sel(2))
	s.Put("c", sel(3)) // evicts "a"

	_, ok := s.Get("a")
	assert.False(t, ok, "a should have been evicted")

	_, ok = s.Get("b")
	assert.True(t, ok)
	_, ok = s.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestStore_AccessPromotesEntry(t *testing.T) {
	s := NewStore(2, 0, nil)

	s.Put("a", sel(1))
	s.Put("b", sel(2))

	s.Get("a")
	s.Put("c", sel(3)) // evicts "b", not "a"

	_, ok := s.Get("a")
	assert.True(t, ok, "a was accessed recently, should not be evicted")
	_, ok = s.Get("b")
	assert.False(t, ok, "b should have been evicted")
}

func TestStore_TTLExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewStore(10, 30*time.Minute, clock)

	s.Put("a", sel(1))

	clock.Advance(29 * time.Minute)
	_, ok := s.Get("a")
	require.True(t, ok, "still inside ttl")

	// Get refreshed lastSeen, so another 29 minutes is fine.
	clock.Advance(29 * time.Minute)
	_, ok = s.Get("a")
	require.True(t, ok)

	clock.Advance(31 * time.Minute)
	_, ok = s.Get("a")
	assert.False(t, ok, "idle past ttl")
	assert.Equal(t, 0, s.Len())
}

func TestStore_Has(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewStore(3, time.Minute, clock)

	assert.False(t, s.Has("a"))

	s.Put("a", sel(1))
	assert.True(t, s.Has("a"))

	clock.Advance(2 * time.Minute)
	assert.False(t, s.Has("a"))
	assert.Zero(t, s.Len(), "expired entry dropped")
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewStore(10, 0, clock)

	s.Put("a", sel(1))
	clock.Advance(1000 * time.Hour)

	_, ok := s.Get("a")
	assert.True(t, ok)
}

func TestStore_MinimumCapacity(t *testing.T) {
	s := NewStore(0, 0, nil)

	s.Put("a", sel(1))
	s.Put("b", sel(2))

	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("b")
	assert.True(t, ok)
}

func TestStore_NewIDIsUUID(t *testing.T) {
	s := NewStore(1, 0, nil)

	a, b := s.NewID(), s.NewID()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore(50, time.Minute, nil)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("s-%d", i%5)
			for j := range 100 {
				s.Put(id, sel(j))
				s.Get(id)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, s.Len())
}
