package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crudapi/internal/resource"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// OpenPostgres connects to dsn, pings it and applies the schema migrations.
func OpenPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database (%s): %w", RedactDSN(dsn), err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	if err := Migrate(ctx, db, DialectPostgres); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return pool, nil
}

// RedactDSN hides the credentials of a connection URL.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}

// PostgresCollection stores one entity type in a PostgreSQL table.
type PostgresCollection[T any] struct {
	db      *pgxpool.Pool
	schema  Schema[T]
	timeout time.Duration
}

func NewPostgres[T any](db *pgxpool.Pool, schema Schema[T], timeout time.Duration) *PostgresCollection[T] {
	return &PostgresCollection[T]{db: db, schema: schema, timeout: timeout}
}

func (r *PostgresCollection[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresCollection[T]) List(ctx context.Context) ([]T, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, r.schema.selectSQL()+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.schema.Table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var (
			item T
			id   int64
		)
		if err := rows.Scan(r.schema.scanTargets(&item, &id)...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.schema.Table, err)
		}
		r.schema.SetID(&item, id)
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PostgresCollection[T]) Get(ctx context.Context, id int64) (T, error) {
	var (
		item  T
		rowID int64
	)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, r.schema.selectSQL()+" WHERE id = $1", id).
		Scan(r.schema.scanTargets(&item, &rowID)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item, resource.ErrNotFound
		}
		return item, fmt.Errorf("get %s %d: %w", r.schema.Table, id, err)
	}
	r.schema.SetID(&item, rowID)
	return item, nil
}

func (r *PostgresCollection[T]) Insert(ctx context.Context, item T) (T, error) {
	var id int64
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, r.schema.insertSQL(dollar)+" RETURNING id", r.schema.Values(item)...).Scan(&id)
	if err != nil {
		return item, fmt.Errorf("insert %s: %w", r.schema.Table, err)
	}
	r.schema.SetID(&item, id)
	return item, nil
}

func (r *PostgresCollection[T]) Replace(ctx context.Context, item T) error {
	args := append(r.schema.Values(item), r.schema.ID(item))
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, r.schema.updateSQL(dollar), args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.schema.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrNotFound
	}
	return nil
}

func (r *PostgresCollection[T]) Remove(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, "DELETE FROM "+r.schema.Table+" WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete %s %d: %w", r.schema.Table, id, err)
	}
	return nil
}

func (r *PostgresCollection[T]) Clear(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, "DELETE FROM "+r.schema.Table); err != nil {
		return fmt.Errorf("clear %s: %w", r.schema.Table, err)
	}
	return nil
}
