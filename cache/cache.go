package cache

import (
	"strings"
	"sync"
	"time"
)

// Store is a small in-memory TTL cache. Expired entries are evicted
// lazily on access.
type Store[V any] struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]entry[V]
	now     func() time.Time
}

type entry[V any] struct {
	value   V
	expires time.Time
}

func New[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if s.now().After(e.expires) {
		delete(s.entries, key)
		var zero V
		return zero, false
	}

	return e.value, true
}

func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry[V]{
		value:   value,
		expires: s.now().Add(s.ttl),
	}
}

// Key joins the parts of a composite cache key.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}
