// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the gallery CMS server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
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

	"gallerycms/internal/admin"
	"gallerycms/internal/cache"
	"gallerycms/internal/config"
	"gallerycms/internal/database"
	"gallerycms/internal/handlers"
	"gallerycms/internal/metrics"
	"gallerycms/internal/middleware"
	"gallerycms/internal/publish"
	"gallerycms/internal/router"
	"gallerycms/internal/storage"
	"gallerycms/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: text in development, JSON everywhere else.
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(ctx, db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Valkey is optional: without it each instance caches feeds in process.
	var remote *cache.FeedCache
	valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyAddr(), cfg.ValkeyPassword, cfg.ValkeyDB)
	if err != nil {
		slog.Warn("valkey unavailable, using in-process feed cache only", "addr", cfg.ValkeyAddr(), "error", err)
	} else {
		defer valkeyClient.Close()
		remote = cache.NewFeedCache(valkeyClient, cfg.FeedCacheTTL)
	}
	feedCache := cache.NewTiered(cache.NewLocal(cfg.FeedLocalTTL), remote)

	storageClient, err := storage.New(storage.Options{
		Endpoint:     cfg.S3Endpoint,
		Region:       cfg.S3Region,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		PublicBucket: cfg.S3PublicBucket,
		PublicURL:    cfg.S3PublicURL,
		PresignTTL:   cfg.S3PresignTTL,
	})
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient == nil {
		slog.Warn("s3 storage not configured, object URLs disabled")
	} else {
		slog.Info("s3 storage configured",
			"endpoint", cfg.S3Endpoint,
			"public_bucket", cfg.S3PublicBucket,
		)
	}

	clock := publish.SystemClock
	m := metrics.New()

	photoStore := store.NewGalleryPhotoStore(db, clock)
	pageStore := store.NewHomePageStore(db)
	linkStore := store.NewRelatedLinkStore(db)
	relatedDocStore := store.NewRelatedDocumentStore(db)

	adminHandlers := handlers.NewAdmin(handlers.AdminDeps{
		Registry:         admin.Default(),
		Photos:           photoStore,
		Images:           store.NewImageStore(db),
		Documents:        store.NewDocumentStore(db),
		Pages:            pageStore,
		SimplePhotos:     store.NewSimplePhotoStore(db),
		SimpleThings:     store.NewSimpleThingStore(db),
		RelatedLinks:     linkStore,
		RelatedDocuments: relatedDocStore,
		CacheLog:         store.NewCacheLogStore(db),
		Cache:            feedCache,
		Linker:           storageClient,
		Metrics:          m,
		Clock:            clock,
	})
	publicHandlers := handlers.NewPublic(handlers.PublicDeps{
		Photos:    photoStore,
		Pages:     pageStore,
		Links:     linkStore,
		Documents: relatedDocStore,
		Cache:     feedCache,
		Linker:    storageClient,
		Metrics:   m,
		Clock:     clock,
		FeedTTL:   cfg.FeedCacheTTL,
	})

	limiter := middleware.NewRateLimiter(cfg.AdminRateLimit, cfg.AdminRateBurst, 10*time.Minute)
	defer limiter.Stop()

	r := router.New(adminHandlers, publicHandlers, m, limiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
