// Package memory provides the process-local storage backing every domain
// repository. State lives in maps guarded by per-collection locks, is created
// once at startup and is gone when the process exits; there is no durability
// layer behind it.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/shared"
)

// collection is a mutex-guarded id-keyed map that preserves insertion order
// for listing, mirroring the append-order the UI expects. Entities are cloned
// on the way in and out so callers can never alias stored state; mutations
// only take effect through put.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*T
	order []uuid.UUID
	clone func(*T) *T
}

func newCollection[T any](clone func(*T) *T) *collection[T] {
	return &collection[T]{
		items: make(map[uuid.UUID]*T),
		clone: clone,
	}
}

func (c *collection[T]) get(id uuid.UUID) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c.clone(item), nil
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.clone(c.items[id]))
	}
	return out
}

func (c *collection[T]) filter(pred func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, id := range c.order {
		if item := c.items[id]; pred(item) {
			out = append(out, *c.clone(item))
		}
	}
	return out
}

// first returns a clone of the first item matching pred in insertion order.
func (c *collection[T]) first(pred func(*T) bool) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if item := c.items[id]; pred(item) {
			return c.clone(item), nil
		}
	}
	return nil, shared.ErrNotFound
}

func (c *collection[T]) put(id uuid.UUID, item *T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = c.clone(item)
}

func (c *collection[T]) remove(id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		return shared.ErrNotFound
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// removeWhere deletes every item matching pred and returns the count.
func (c *collection[T]) removeWhere(pred func(*T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	kept := c.order[:0]
	for _, id := range c.order {
		if pred(c.items[id]) {
			delete(c.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	c.order = kept
	return removed
}
