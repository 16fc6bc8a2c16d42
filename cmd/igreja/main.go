// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/iesp-app/igreja-go/internal/cache"
	"github.com/iesp-app/igreja-go/internal/config"
	"github.com/iesp-app/igreja-go/internal/content"
	"github.com/iesp-app/igreja-go/internal/handler"
	"github.com/iesp-app/igreja-go/internal/logging"
	"github.com/iesp-app/igreja-go/internal/middleware"
	"github.com/iesp-app/igreja-go/internal/scheduler"
	"github.com/iesp-app/igreja-go/internal/service"
	"github.com/iesp-app/igreja-go/internal/session"
	"github.com/iesp-app/igreja-go/internal/storage"
	"github.com/iesp-app/igreja-go/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "igreja - church community API server\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  IGREJA_SESSION_SECRET    Cookie signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  IGREJA_DB_PATH           SQLite database path (default: ./data/igreja.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  IGREJA_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  IGREJA_WEB_ORIGIN        Comma-separated CORS allow-list\n")
		_, _ = fmt.Fprintf(os.Stderr, "  IGREJA_STORAGE_ENDPOINT  S3-compatible endpoint for gallery media (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  IGREJA_REDIS_URL         Redis URL for distributed caching (optional)\n")
	}

	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("igreja %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// Upgrade logger to also persist WARN and ERROR records as audit events
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewAuditLogHandler(textHandler, db))
	slog.SetDefault(logger)

	queries := store.New(db)
	ctx := context.Background()

	password, err := queries.EnsureAdmin(ctx)
	if err != nil {
		return fmt.Errorf("ensuring admin account: %w", err)
	}
	if password != "" {
		slog.Info("bootstrap admin created",
			"email", store.DefaultAdminEmail, "password", password)
	}
	if cfg.DoSeed {
		if err := queries.SeedContent(ctx, logger); err != nil {
			return fmt.Errorf("seeding content: %w", err)
		}
	}

	appCache, err := cache.New(cache.Options{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:    cfg.CacheMaxSize,
	})
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() {
		if err := appCache.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()

	var objects storage.ObjectStore
	if cfg.StorageEnabled() {
		s3, err := storage.NewS3(ctx, storage.S3Options{
			Endpoint:      cfg.StorageEndpoint,
			Region:        cfg.StorageRegion,
			AccessKey:     cfg.StorageAccessKey,
			SecretKey:     cfg.StorageSecretKey,
			Bucket:        cfg.StorageBucket,
			PublicBaseURL: cfg.StoragePublicURL,
		})
		if err != nil {
			return fmt.Errorf("initializing object storage: %w", err)
		}
		objects = s3
		slog.Info("object storage enabled", "bucket", cfg.StorageBucket)
	} else {
		slog.Warn("object storage not configured, gallery uploads disabled")
	}

	codec := session.NewCodec(cfg.SessionSecret)
	protection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	h := handler.New(handler.Options{
		DB:         db,
		Queries:    queries,
		Codec:      codec,
		Auth:       service.NewAuth(queries, logger),
		Donations:  service.NewDonation(queries, logger),
		Favorites:  service.NewFavorite(queries),
		Community:  service.NewCommunity(queries, logger),
		Content:    content.NewService(queries, appCache, cacheTTL, logger),
		Objects:    objects,
		Protection: protection,
		Logger:     logger,
	})

	sched := scheduler.New(queries, objects,
		time.Duration(cfg.OrphanGraceMinutes)*time.Minute, logger)
	sched.Start()
	defer sched.Stop()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.CORS(cfg.WebOrigins))
	r.Use(middleware.Session(codec))
	r.Mount("/", h.Routes())

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // room for gallery uploads
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
