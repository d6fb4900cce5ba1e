// Package app wires the book and contact services onto one HTTP handler.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"crudapi/internal/book"
	"crudapi/internal/config"
	"crudapi/internal/contact"
	"crudapi/internal/httpx"
	"crudapi/internal/storage"

	"github.com/VictoriaMetrics/metrics"
)

const readinessTimeout = 500 * time.Millisecond

type App struct {
	Books    *book.Service
	Contacts *contact.Service

	db      *storage.DB
	logger  *slog.Logger
	metrics *metrics.Set
	handler http.Handler
}

// New builds the services on db and the routed, middleware-wrapped handler.
// ctx bounds background work such as rate limiter cleanup.
func New(ctx context.Context, db *storage.DB, cfg config.HTTP, logger *slog.Logger) (*App, error) {
	bookRepo, err := book.NewRepository(db)
	if err != nil {
		return nil, fmt.Errorf("book repository: %w", err)
	}
	contactRepo, err := contact.NewRepository(db)
	if err != nil {
		return nil, fmt.Errorf("contact repository: %w", err)
	}

	a := &App{
		Books:    book.NewService(bookRepo),
		Contacts: contact.NewService(contactRepo),
		db:       db,
		logger:   logger,
		metrics:  metrics.NewSet(),
	}
	a.handler = a.routes(ctx, cfg)
	return a, nil
}

func (a *App) Handler() http.Handler { return a.handler }

// Metrics is the set request metrics are recorded in.
func (a *App) Metrics() *metrics.Set { return a.metrics }

func (a *App) routes(ctx context.Context, cfg config.HTTP) http.Handler {
	mux := http.NewServeMux()

	book.NewHTTPHandler(a.Books, a.logger).Register(mux, "/api/books")
	contact.NewHTTPHandler(a.Contacts, a.logger).Register(mux, "/api/contacts")

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", a.ready)
	mux.Handle("GET /metrics", httpx.MetricsHandler(a.metrics))

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware(a.logger),
		httpx.AccessLogMiddleware(a.logger),
		httpx.RecoveryMiddleware(a.logger),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
	}
	if cfg.RateLimitRPS > 0 {
		middlewares = append(middlewares, httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxy).Middleware)
	}
	middlewares = append(middlewares,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		// Innermost, so r.Pattern set by the mux is visible to it.
		httpx.MetricsMiddleware(a.metrics),
	)
	return httpx.Chain(mux, middlewares...)
}

func (a *App) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()
	if err := a.db.Ping(ctx); err != nil {
		httpx.LoggerFrom(r, a.logger).Warn("readiness check failed", "driver", a.db.Driver(), "error", err)
		httpx.JSONError(w, r, http.StatusServiceUnavailable, "NOT_READY", "storage not ready")
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// NewServer returns an http.Server for handler whose internal errors go to logger.
func NewServer(addr string, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}
