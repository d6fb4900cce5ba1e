package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect selects the embedded migration set.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// MigrationProvider returns a goose provider over the embedded migrations for dialect.
func MigrationProvider(db *sql.DB, dialect Dialect) (*goose.Provider, error) {
	var gooseDialect goose.Dialect
	switch dialect {
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}
	fsys, err := fs.Sub(migrationsFS, "migrations/"+string(dialect))
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(gooseDialect, db, fsys)
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	provider, err := MigrationProvider(db, dialect)
	if err != nil {
		return err
	}
	_, err = provider.Up(ctx)
	return err
}

// OpenForMigration connects to the SQL backend described by cfg without
// applying any migration, for tools that drive the provider themselves.
func OpenForMigration(ctx context.Context, cfg Config) (*sql.DB, Dialect, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = DefaultDSN(cfg.Driver)
	}

	switch cfg.Driver {
	case DriverSQLite:
		db, err := connectSQLite(ctx, dsn)
		return db, DialectSQLite, err
	case DriverPostgres:
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, "", fmt.Errorf("cannot open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			closeDB(db)
			return nil, "", fmt.Errorf("cannot ping database (%s): %w", RedactDSN(dsn), err)
		}
		return db, DialectPostgres, nil
	default:
		return nil, "", fmt.Errorf("%w: %q has no schema migrations", ErrUnknownDriver, cfg.Driver)
	}
}
