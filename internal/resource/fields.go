package resource

import (
	"cmp"
	"strings"
)

// Compare orders two entities by a single field.
type Compare[T any] func(a, b T) int

// Ordered builds a Compare from a projector returning an ordered key.
func Ordered[T any, K cmp.Ordered](project func(T) K) Compare[T] {
	return func(a, b T) int {
		return cmp.Compare(project(a), project(b))
	}
}

// Bool builds a Compare from a boolean projector; false sorts before true.
func Bool[T any](project func(T) bool) Compare[T] {
	return func(a, b T) int {
		x, y := project(a), project(b)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	}
}

// Fields maps case-insensitive field tokens to comparators.
type Fields[T any] struct {
	byToken map[string]Compare[T]
	names   []string
}

func NewFields[T any]() *Fields[T] {
	return &Fields[T]{byToken: make(map[string]Compare[T])}
}

// Register adds a sortable field. Registering a name twice replaces the comparator.
func (f *Fields[T]) Register(name string, compare Compare[T]) *Fields[T] {
	token := strings.ToLower(name)
	if _, ok := f.byToken[token]; !ok {
		f.names = append(f.names, name)
	}
	f.byToken[token] = compare
	return f
}

// Lookup resolves a field token, ignoring case.
func (f *Fields[T]) Lookup(name string) (Compare[T], bool) {
	compare, ok := f.byToken[strings.ToLower(name)]
	return compare, ok
}

// Names returns the registered field names in registration order.
func (f *Fields[T]) Names() []string {
	return append([]string(nil), f.names...)
}
