// Package session keeps each browser session's current Selection.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
)

// Store is a thread-safe LRU of selections keyed by session id. Entries idle
// longer than the TTL are dropped on access; the least recently used entry
// is evicted once the store is full.
type Store struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock

	mu      sync.Mutex
	entries map[string]*entry
	head    *entry // most recently used
	tail    *entry // least recently used
}

type entry struct {
	id       string
	value    domain.Selection
	lastSeen time.Time
	prev     *entry
	next     *entry
}

// NewStore creates a session store. A zero ttl disables expiry. Pass nil
// for clock to use the real clock.
func NewStore(maxEntries int, ttl time.Duration, clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Store{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clock,
		entries:    make(map[string]*entry),
	}
}

// NewID returns a fresh random session id.
func (s *Store) NewID() string {
	return uuid.NewString()
}

// Get returns the session's Selection, if it has one that has not expired.
func (s *Store) Get(id string) (domain.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return domain.Selection{}, false
	}
	now := s.clock.Now()
	if s.expired(e, now) {
		s.drop(e)
		return domain.Selection{}, false
	}
	e.lastSeen = now
	s.moveToFront(e)
	return e.value, true
}

// Has reports whether id names a live session. It does not refresh the
// entry's idle timer.
func (s *Store) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return false
	}
	if s.expired(e, s.clock.Now()) {
		s.drop(e)
		return false
	}
	return true
}

// Put replaces the session's Selection.
func (s *Store) Put(id string, sel domain.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if e, ok := s.entries[id]; ok {
		e.value = sel
		e.lastSeen = now
		s.moveToFront(e)
		return
	}

	e := &entry{id: id, value: sel, lastSeen: now}
	s.entries[id] = e
	s.addToFront(e)

	for len(s.entries) > s.maxEntries {
		s.drop(s.tail)
	}
}

// Len reports the number of sessions held, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}

func (s *Store) moveToFront(e *entry) {
	if e == s.head {
		return
	}
	s.unlink(e)
	s.addToFront(e)
}

func (s *Store) addToFront(e *entry) {
	e.next = s.head
	e.prev = nil
	if s.head != nil {
		s.head.prev = e
	}
	s.head = e
	if s.tail == nil {
		s.tail = e
	}
}

func (s *Store) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.tail = e.prev
	}
}

func (s *Store) drop(e *entry) {
	if e == nil {
		return
	}
	delete(s.entries, e.id)
	s.unlink(e)
}
