// Package resource implements a generic CRUD store over a persisted collection
// of one entity type, with substring search, exact lookup and field sorting.
package resource

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no entity has the requested identifier
	// or designated field value.
	ErrNotFound = errors.New("resource not found")

	// ErrUnknownField is returned when sorting by a field that is not registered.
	ErrUnknownField = errors.New("unknown sort field")
)

// Collection is the persisted collection a Store delegates to.
//
// List returns entities in ascending identifier order. Insert assigns the
// identifier. Replace returns ErrNotFound when the identifier is absent.
// Remove of an absent identifier is not an error.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Insert(ctx context.Context, item T) (T, error)
	Replace(ctx context.Context, item T) error
	Remove(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

// Kind describes an entity type to the Store.
type Kind[T any] struct {
	// Name is the singular entity name, used in error messages.
	Name string
	// Field is the token of the designated text field (e.g. "title").
	Field string
	// ID projects the identifier.
	ID func(T) int64
	// Text projects the designated text field.
	Text func(T) string
	// Fields holds the sortable fields.
	Fields *Fields[T]
}
