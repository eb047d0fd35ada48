// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis opens the optional Redis connection that holds panel sessions.

Only the panel store talks to Redis: one SET or GETEX per click and one
GETDEL per confirm. Keeping sessions there lets an open panel outlive a bot
restart. Without REDIS_URL the bot keeps them in memory instead.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/redherring/internal/platform/constants"
)

// A session round-trip has to fit inside the interaction deadline with room
// left for the SQL work and the Discord reply.
const (
	sessionIOTimeout = constants.InteractionTimeout / 5
	dialTimeout      = 3 * time.Second
	pingTimeout      = 2 * time.Second

	// Clicks on one guild's panels rarely overlap by more than a handful.
	poolSize = 4
)

// NewClient connects to redisURL and checks the server answers before the
// gateway opens, so a bad URL fails at startup rather than on the first click.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.PoolSize = poolSize
	options.MinIdleConns = 1
	options.DialTimeout = dialTimeout
	options.ReadTimeout = sessionIOTimeout
	options.WriteTimeout = sessionIOTimeout

	client := redis.NewClient(options)
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("session_store_connected",
		slog.String("backend", "redis"),
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)
	return client, nil
}

// Ping backs the session store part of the health endpoint.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: session store unreachable: %w", err)
	}
	return nil
}
