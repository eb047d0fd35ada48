// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/taibuivan/redherring/internal/api"
	"github.com/taibuivan/redherring/internal/bot"
	"github.com/taibuivan/redherring/internal/core/content"
	"github.com/taibuivan/redherring/internal/panel"
	"github.com/taibuivan/redherring/internal/platform/config"
	"github.com/taibuivan/redherring/internal/platform/constants"
	"github.com/taibuivan/redherring/internal/platform/metrics"
	"github.com/taibuivan/redherring/internal/platform/migration"
	pgstore "github.com/taibuivan/redherring/internal/platform/postgres"
	"github.com/taibuivan/redherring/internal/platform/ratelimit"
	redisstore "github.com/taibuivan/redherring/internal/platform/redis"
	"github.com/taibuivan/redherring/internal/platform/sqlite"
)

// startupTimeout bounds connecting to the store and Redis.
const startupTimeout = 30 * time.Second

// # Startup Sequence
//
//  1. Logger and configuration.
//  2. Content store (migrated) and optional Redis.
//  3. Panel session store, rate limiters, metrics.
//  4. Liveness server and Discord gateway.
//  5. Graceful shutdown on SIGINT/SIGTERM.

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	log := newLogger(cfg)
	must(log, err, "load configuration")
	must(log, cfg.RequireBot(), "check discord settings")

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("store", cfg.StoreDriver),
		slog.String("port", cfg.Port),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startupCtx, startupCancel := context.WithTimeout(ctx, startupTimeout)
	defer startupCancel()

	// ── Content store ─────────────────────────────────────────────────────
	store, err := openStore(startupCtx, cfg, log)
	must(log, err, "open content store")
	defer store.close()

	service := content.NewService(store.repository, log)

	// ── Panel sessions ────────────────────────────────────────────────────
	var (
		sessions   panel.Store
		checkCache func(context.Context) error
	)
	if cfg.RedisURL != "" {
		client, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, client)

		sessions = panel.NewRedisStore(client, cfg.SessionTTL())
		checkCache = func(ctx context.Context) error { return redisstore.Ping(ctx, client) }
	} else {
		memory := panel.NewMemoryStore(cfg.SessionTTL(), constants.SessionSweepInterval)
		defer memory.Close()
		sessions = memory
	}

	// ── Throttling ────────────────────────────────────────────────────────
	memberLimiter := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst, constants.RateLimitClientTTL)
	go memberLimiter.Run(ctx, constants.RateLimitCleanupInterval)

	httpLimiter := ratelimit.New(constants.HTTPRateLimitRPS, constants.HTTPRateLimitBurst, constants.RateLimitClientTTL)
	go httpLimiter.Run(ctx, constants.RateLimitCleanupInterval)

	// ── Metrics ───────────────────────────────────────────────────────────
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(registry)

	// ── Liveness server ───────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		StoreName:  cfg.StoreDriver,
		CheckStore: service.Ping,
		CheckCache: checkCache,
	}, log)

	server := api.NewServer(cfg.Port, log, httpLimiter, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   metrics.Handler(registry),
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// ── Discord gateway ───────────────────────────────────────────────────
	handler := bot.NewHandler(service, sessions, memberLimiter, recorder, log)
	discord, err := bot.New(cfg.DiscordToken, cfg.GuildID, handler, log)
	must(log, err, "create discord session")
	must(log, discord.Open(ctx), "connect to discord")

	log.Info("bot_started")

	// ── Graceful shutdown ─────────────────────────────────────────────────
	select {
	case <-ctx.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		log.Error("server_failed", slog.Any("error", err))
	}

	if err := discord.Close(); err != nil {
		log.Error("discord_close_failed", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		return err
	}

	log.Info("server_exited_cleanly")
	return nil
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	log := newLogger(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	store.close()

	log.Info("migrations_applied", slog.String("store", cfg.StoreDriver))
	return nil
}

// # Store Selection

type contentStore struct {
	repository content.Repository
	close      func()
}

// openStore migrates and opens the content store chosen by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*contentStore, error) {
	switch cfg.StoreDriver {
	case constants.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		if err := migration.RunUp(constants.DriverSQLite, cfg.SQLitePath, log); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &contentStore{
			repository: content.NewSQLiteRepository(db),
			close: func() {
				log.Info("closing_sqlite_database")
				if err := db.Close(); err != nil {
					log.Error("sqlite_close_failed", slog.Any("error", err))
				}
			},
		}, nil

	default:
		if err := migration.RunUp(constants.DriverPostgres, cfg.DatabaseURL, log); err != nil {
			return nil, err
		}
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		return &contentStore{
			repository: content.NewPostgresRepository(pool),
			close: func() {
				log.Info("closing_postgres_pool")
				pool.Close()
			},
		}, nil
	}
}

func closeRedis(log *slog.Logger, client *goredis.Client) {
	log.Info("closing_redis_client")
	if err := client.Close(); err != nil {
		log.Error("redis_close_failed", slog.Any("error", err))
	}
}
