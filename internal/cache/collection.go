// Package cache holds per-page in-memory lists of domain records. The lists
// are caches of backend state, not a second store: after a successful
// mutation the entry is replaced wholesale with the record the backend
// returned, and deletions are applied only once the call has resolved.
package cache

import (
	"sync"

	"github.com/google/uuid"
)

// Collection is a list cache for one entity type. id extracts the
// backend-assigned identity from a record.
//
// Optimistic inserts are explicit: BeginPending registers a record under a
// client-generated temp id, and the entry is either confirmed with the
// canonical server record or rolled back. Pending records never carry a
// fabricated server id.
type Collection[T any] struct {
	mu      sync.RWMutex
	id      func(T) int64
	items   []T
	pending map[string]T
}

// NewCollection creates an empty collection using id for identity.
func NewCollection[T any](id func(T) int64) *Collection[T] {
	return &Collection[T]{id: id, pending: make(map[string]T)}
}

// SetAll replaces the confirmed contents, used after a list fetch.
func (c *Collection[T]) SetAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
}

// BeginPending registers an optimistic insert and returns its client temp
// id. The record shows up in snapshots immediately, before the backend has
// confirmed it.
func (c *Collection[T]) BeginPending(record T) string {
	tempID := uuid.New().String()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[tempID] = record
	return tempID
}

// Confirm resolves an optimistic insert: the pending entry is dropped and
// the canonical record takes its place, leaving exactly one copy keyed by
// the backend-assigned id.
func (c *Collection[T]) Confirm(tempID string, canonical T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, tempID)
	c.upsertLocked(canonical)
}

// Rollback drops an optimistic insert after a failed create. The confirmed
// list is untouched.
func (c *Collection[T]) Rollback(tempID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, tempID)
}

// Replace swaps the entry with the record's id for the given record. Used
// after updates: the cache adopts server state, it never merges.
func (c *Collection[T]) Replace(record T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(record)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = record
			return true
		}
	}
	return false
}

// Upsert replaces the matching entry or appends when absent.
func (c *Collection[T]) Upsert(record T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upsertLocked(record)
}

// Remove drops the entry with the given id. Callers invoke it only after a
// delete call has resolved.
func (c *Collection[T]) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the confirmed entry with the given id.
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Snapshot returns the confirmed records followed by any pending ones.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items)+len(c.pending))
	out = append(out, c.items...)
	for _, p := range c.pending {
		out = append(out, p)
	}
	return out
}

// Len counts confirmed plus pending records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items) + len(c.pending)
}

// PendingCount counts unconfirmed optimistic inserts.
func (c *Collection[T]) PendingCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pending)
}

func (c *Collection[T]) upsertLocked(record T) {
	id := c.id(record)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = record
			return
		}
	}
	c.items = append(c.items, record)
}
