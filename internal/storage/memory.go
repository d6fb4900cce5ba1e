package storage

import (
	"context"
	"slices"
	"sync"

	"crudapi/internal/resource"
)

// MemoryCollection keeps entities in process memory. Identifiers are never reused.
type MemoryCollection[T any] struct {
	mu     sync.RWMutex
	schema Schema[T]
	lastID int64
	items  []T
}

var _ resource.Collection[struct{}] = (*MemoryCollection[struct{}])(nil)

func NewMemory[T any](schema Schema[T]) *MemoryCollection[T] {
	return &MemoryCollection[T]{schema: schema}
}

func (c *MemoryCollection[T]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items), nil
}

func (c *MemoryCollection[T]) Get(_ context.Context, id int64) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index(id)
	if !ok {
		var zero T
		return zero, resource.ErrNotFound
	}
	return c.items[i], nil
}

func (c *MemoryCollection[T]) Insert(_ context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastID++
	c.schema.SetID(&item, c.lastID)
	c.items = append(c.items, item)
	return item, nil
}

func (c *MemoryCollection[T]) Replace(_ context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index(c.schema.ID(item))
	if !ok {
		return resource.ErrNotFound
	}
	c.items[i] = item
	return nil
}

func (c *MemoryCollection[T]) Remove(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i, ok := c.index(id); ok {
		c.items = slices.Delete(c.items, i, i+1)
	}
	return nil
}

func (c *MemoryCollection[T]) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	return nil
}

// index expects c.mu to be held.
func (c *MemoryCollection[T]) index(id int64) (int, bool) {
	i := slices.IndexFunc(c.items, func(item T) bool { return c.schema.ID(item) == id })
	return i, i >= 0
}
