package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"crudapi/internal/resource"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens the database at path (":memory:" for an in-memory
// database) and applies the schema migrations.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := connectSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db, DialectSQLite); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func connectSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database lives only as long as its connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			closeDB(db)
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

// SQLiteCollection stores one entity type in a SQLite table.
type SQLiteCollection[T any] struct {
	db     *sql.DB
	schema Schema[T]
}

func NewSQLite[T any](db *sql.DB, schema Schema[T]) *SQLiteCollection[T] {
	return &SQLiteCollection[T]{db: db, schema: schema}
}

func (c *SQLiteCollection[T]) List(ctx context.Context) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, c.schema.selectSQL()+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.schema.Table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var (
			item T
			id   int64
		)
		if err := rows.Scan(c.schema.scanTargets(&item, &id)...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.schema.Table, err)
		}
		c.schema.SetID(&item, id)
		out = append(out, item)
	}
	return out, rows.Err()
}

func (c *SQLiteCollection[T]) Get(ctx context.Context, id int64) (T, error) {
	var (
		item  T
		rowID int64
	)
	err := c.db.QueryRowContext(ctx, c.schema.selectSQL()+" WHERE id = ?", id).
		Scan(c.schema.scanTargets(&item, &rowID)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item, resource.ErrNotFound
		}
		return item, fmt.Errorf("get %s %d: %w", c.schema.Table, id, err)
	}
	c.schema.SetID(&item, rowID)
	return item, nil
}

func (c *SQLiteCollection[T]) Insert(ctx context.Context, item T) (T, error) {
	res, err := c.db.ExecContext(ctx, c.schema.insertSQL(questionMark), c.schema.Values(item)...)
	if err != nil {
		return item, fmt.Errorf("insert %s: %w", c.schema.Table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return item, fmt.Errorf("insert %s: %w", c.schema.Table, err)
	}
	c.schema.SetID(&item, id)
	return item, nil
}

func (c *SQLiteCollection[T]) Replace(ctx context.Context, item T) error {
	args := append(c.schema.Values(item), c.schema.ID(item))
	res, err := c.db.ExecContext(ctx, c.schema.updateSQL(questionMark), args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", c.schema.Table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", c.schema.Table, err)
	}
	if n == 0 {
		return resource.ErrNotFound
	}
	return nil
}

func (c *SQLiteCollection[T]) Remove(ctx context.Context, id int64) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM "+c.schema.Table+" WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete %s %d: %w", c.schema.Table, id, err)
	}
	return nil
}

func (c *SQLiteCollection[T]) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM "+c.schema.Table); err != nil {
		return fmt.Errorf("clear %s: %w", c.schema.Table, err)
	}
	return nil
}
