package resource

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Store provides CRUD and query operations over one Collection.
type Store[T any] struct {
	kind  Kind[T]
	items Collection[T]
}

// NewStore creates a store for kind backed by items.
func NewStore[T any](kind Kind[T], items Collection[T]) *Store[T] {
	return &Store[T]{kind: kind, items: items}
}

// Kind returns the entity description the store was built with.
func (s *Store[T]) Kind() Kind[T] {
	return s.kind
}

// GetAll returns every stored entity in ascending identifier order.
func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// GetByID returns ErrNotFound when no entity has the identifier.
func (s *Store[T]) GetByID(ctx context.Context, id int64) (T, error) {
	return s.items.Get(ctx, id)
}

// SearchByField returns every entity whose designated field contains value.
// Matching is case-sensitive.
func (s *Store[T]) SearchByField(ctx context.Context, value string) ([]T, error) {
	items, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(s.kind.Text(item), value) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// GetByFieldExact returns the first entity whose designated field equals value.
func (s *Store[T]) GetByFieldExact(ctx context.Context, value string) (T, error) {
	var zero T
	items, err := s.GetAll(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if s.kind.Text(item) == value {
			return item, nil
		}
	}
	return zero, ErrNotFound
}

// Add persists item under a fresh identifier and returns the stored form.
func (s *Store[T]) Add(ctx context.Context, item T) (T, error) {
	return s.items.Insert(ctx, item)
}

// Update replaces every non-identifier field of the stored entity.
// Callers verify the identifier exists beforehand.
func (s *Store[T]) Update(ctx context.Context, item T) error {
	return s.items.Replace(ctx, item)
}

// Delete removes the entity if present.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	return s.items.Remove(ctx, id)
}

func (s *Store[T]) DeleteAll(ctx context.Context) error {
	return s.items.Clear(ctx)
}

// SortBy returns all entities ordered by field. Equal keys keep their
// retrieval order in both directions.
func (s *Store[T]) SortBy(ctx context.Context, field string, order Order) ([]T, error) {
	compare, ok := s.kind.Fields.Lookup(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, s.kind.Name, field)
	}
	items, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if order == Desc {
		slices.SortStableFunc(items, func(a, b T) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(items, compare)
	}
	return items, nil
}
