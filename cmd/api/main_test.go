package main

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"crudapi/internal/config"
	"crudapi/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_ShutsDownOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Addr = "127.0.0.1:0"
	cfg.Storage = storage.Config{Driver: storage.DriverMemory}
	cfg.HTTP.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg, slog.New(slog.DiscardHandler)) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_StorageError(t *testing.T) {
	cfg := config.Default()
	cfg.Storage = storage.Config{Driver: storage.DriverBolt, DSN: t.TempDir()}

	err := serve(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.Error(t, err)
}
