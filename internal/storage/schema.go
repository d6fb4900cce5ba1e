// Package storage provides the backing collections a resource.Store runs on:
// in-process memory, SQLite, PostgreSQL and bolt.
package storage

import (
	"fmt"
	"strings"
)

// Schema maps an entity type onto a table (or bucket).
//
// Columns, Values and Fields list the non-identifier columns in the same order.
type Schema[T any] struct {
	Table   string
	Columns []string
	Values  func(T) []any
	Fields  func(*T) []any
	ID      func(T) int64
	SetID   func(*T, int64)
}

type placeholder func(n int) string

func questionMark(int) string { return "?" }

func dollar(n int) string { return fmt.Sprintf("$%d", n) }

func (s Schema[T]) selectSQL() string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(s.Columns, ", "), s.Table)
}

func (s Schema[T]) insertSQL(ph placeholder) string {
	marks := make([]string, len(s.Columns))
	for i := range s.Columns {
		marks[i] = ph(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.Table, strings.Join(s.Columns, ", "), strings.Join(marks, ", "))
}

func (s Schema[T]) updateSQL(ph placeholder) string {
	sets := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		sets[i] = fmt.Sprintf("%s = %s", c, ph(i+1))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = %s",
		s.Table, strings.Join(sets, ", "), ph(len(s.Columns)+1))
}

// scanTargets returns the destinations for a row selected by selectSQL.
func (s Schema[T]) scanTargets(item *T, id *int64) []any {
	return append([]any{id}, s.Fields(item)...)
}
