package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"crudapi/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DB_DSN", "")
	return dir
}

func TestRun_SQLiteLifecycle(t *testing.T) {
	dir := isolate(t)
	ctx := context.Background()
	dsn := filepath.Join(dir, "crudapi.db")
	args := func(command string) []string {
		return []string{"-command", command, "-driver", "sqlite", "-dsn", dsn}
	}

	var out bytes.Buffer
	require.NoError(t, run(ctx, args("status"), &out))
	assert.Contains(t, out.String(), "Pending")
	assert.Contains(t, out.String(), "00001_create_books.sql")

	out.Reset()
	require.NoError(t, run(ctx, args("up"), &out))
	assert.Contains(t, out.String(), "2 migrations applied")

	out.Reset()
	require.NoError(t, run(ctx, args("version"), &out))
	assert.Equal(t, "version 2\n", out.String())

	out.Reset()
	require.NoError(t, run(ctx, args("down"), &out))
	assert.Contains(t, out.String(), "00002_create_contacts.sql")

	out.Reset()
	require.NoError(t, run(ctx, args("up"), &out))
	assert.Contains(t, out.String(), "1 migrations applied")
}

func TestRun_Errors(t *testing.T) {
	dir := isolate(t)
	ctx := context.Background()
	dsn := filepath.Join(dir, "x.db")

	assert.Error(t, run(ctx, []string{"-command", "create", "-driver", "sqlite", "-dsn", dsn}, &bytes.Buffer{}))
	assert.ErrorIs(t, run(ctx, []string{"-driver", "bolt"}, &bytes.Buffer{}), storage.ErrUnknownDriver)
	assert.Error(t, run(ctx, []string{"-bogus"}, &bytes.Buffer{}))
}

func TestTarget(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_DRIVER=postgres\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("STORAGE_DRIVER") })
	require.NoError(t, os.Unsetenv("STORAGE_DRIVER"))

	cfg, err := target("", "")
	require.NoError(t, err)
	assert.Equal(t, storage.DriverPostgres, cfg.Driver)
	assert.Equal(t, storage.DefaultDSN(storage.DriverPostgres), cfg.DSN)

	cfg, err = target("sqlite", "")
	require.NoError(t, err)
	assert.Equal(t, "crudapi.db", cfg.DSN)

	cfg, err = target("", "postgres://u:p@db/app")
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db/app", cfg.DSN)
}
