// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Kirinukist HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Wire repositories, base services, relations and facades.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/kirinukist/internal/api"
	"github.com/taibuivan/kirinukist/internal/core/author"
	"github.com/taibuivan/kirinukist/internal/core/bookmark"
	"github.com/taibuivan/kirinukist/internal/core/follow"
	"github.com/taibuivan/kirinukist/internal/core/playlist"
	"github.com/taibuivan/kirinukist/internal/core/relation"
	"github.com/taibuivan/kirinukist/internal/core/tag"
	"github.com/taibuivan/kirinukist/internal/core/video"
	"github.com/taibuivan/kirinukist/internal/facade"
	"github.com/taibuivan/kirinukist/internal/platform/config"
	"github.com/taibuivan/kirinukist/internal/platform/constants"
	"github.com/taibuivan/kirinukist/internal/platform/migration"
	pgstore "github.com/taibuivan/kirinukist/internal/platform/postgres"
	"github.com/taibuivan/kirinukist/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Bound startup so misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	if cfg.RunMigrations {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 5. Identity ───────────────────────────────────────────────────────
	verifier, err := sec.NewIdentityVerifier(cfg.IdentitySecret, cfg.IdentityIssuer)
	must(log, err, "initialize identity verifier")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	tags := tag.NewPostgresRepository(pool)

	base := relation.Base{
		Authors:           author.NewService(author.NewPostgresRepository(pool), log),
		Videos:            video.NewService(video.NewPostgresRepository(pool), log),
		Playlists:         playlist.NewService(playlist.NewPostgresRepository(pool), log),
		Tags:              tag.NewService(tags, log),
		VideoBookmarks:    bookmark.NewService(bookmark.NewVideoRepository(pool), log, bookmark.KindVideo),
		PlaylistBookmarks: bookmark.NewService(bookmark.NewPlaylistRepository(pool), log, bookmark.KindPlaylist),
		Logger:            log,
	}
	follows := follow.NewService(follow.NewPostgresRepository(pool), log)
	facades := facade.New(base, follows, tag.NewSearch(tags))

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
	}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, api.NewHandlers(facades, liveness, readiness))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the process JSON logger tagged with the app name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// Only for startup wiring.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
