// Package cache implements the process-wide read cache used by the API
// client: entries stay readable after their stale time passes, but a stale
// read triggers a background refetch so the next read sees current data.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Status describes what Get found for a key
type Status int

const (
	// Miss means no entry exists for the key
	Miss Status = iota
	// Fresh means the entry is within its stale time
	Fresh
	// Stale means the entry exists but its stale time has passed
	Stale
)

type entry struct {
	value     interface{}
	fetchedAt time.Time
	staleTime time.Duration
}

func (e *entry) status(now time.Time) Status {
	if now.Sub(e.fetchedAt) > e.staleTime {
		return Stale
	}
	return Fresh
}

// FetchFunc loads a value from the origin when the cache cannot serve it fresh
type FetchFunc func(ctx context.Context) (interface{}, error)

// Store is a thread-safe stale-while-revalidate cache. All components in the
// process share one Store; any of them may invalidate keys after a mutation.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group

	// nowFunc is swappable in tests
	nowFunc func() time.Time
}

// NewStore creates an empty cache store
func NewStore() *Store {
	return &Store{
		entries: make(map[string]*entry),
		nowFunc: time.Now,
	}
}

// Get returns the cached value for key and whether it is fresh, stale, or
// missing. Stale values are still returned; callers decide whether to refresh.
func (s *Store) Get(key string) (interface{}, Status) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, Miss
	}

	return e.value, e.status(s.nowFunc())
}

// Set stores a value with the given stale time
func (s *Store) Set(key string, value interface{}, staleTime time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &entry{
		value:     value,
		fetchedAt: s.nowFunc(),
		staleTime: staleTime,
	}
}

// Invalidate marks the given keys stale so the next read refetches. Keys
// without an entry are ignored.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		if e, ok := s.entries[key]; ok {
			e.fetchedAt = time.Time{}
		}
	}
}

// InvalidatePrefix marks every key sharing the prefix stale. List caches are
// keyed by resource plus serialized filters, so a mutation invalidates the
// whole resource family with its bare resource name.
func (s *Store) InvalidatePrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if hasKeyPrefix(key, prefix) {
			e.fetchedAt = time.Time{}
		}
	}
}

// Remove deletes keys outright instead of marking them stale
func (s *Store) Remove(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}
}

// Len returns the number of entries, fresh or stale
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Fetch serves key through the cache:
//   - fresh entry: returned without calling fn
//   - stale entry: returned immediately while fn refreshes the entry in the
//     background (collapsed through singleflight so concurrent stale reads
//     trigger one refetch)
//   - miss: fn is called synchronously and the result cached
func (s *Store) Fetch(ctx context.Context, key string, staleTime time.Duration, fn FetchFunc) (interface{}, error) {
	value, status := s.Get(key)

	switch status {
	case Fresh:
		return value, nil

	case Stale:
		go func() {
			// Background refresh is detached from the caller's lifetime
			_, _, _ = s.group.Do(key, func() (interface{}, error) {
				v, err := fn(context.WithoutCancel(ctx))
				if err != nil {
					return nil, err
				}
				s.Set(key, v, staleTime)
				return v, nil
			})
		}()
		return value, nil

	default:
		v, err, _ := s.group.Do(key, func() (interface{}, error) {
			v, err := fn(ctx)
			if err != nil {
				return nil, err
			}
			s.Set(key, v, staleTime)
			return v, nil
		})
		return v, err
	}
}
