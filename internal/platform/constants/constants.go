// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire bot.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the liveness server.
  - Storage: driver names, statement timeouts.
  - Interaction: page size, panel inactivity windows, rate limiter upkeep.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "redherring"
	AppVersion = "0.1.0-dev"

	// LivenessBody is the fixed reply of the liveness root path.
	LivenessBody = "Red Herring est en ligne."
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// StatementTimeout bounds every single store round-trip.
	StatementTimeout = 10 * time.Second

	// HTTPRequestTimeout bounds every request of the liveness server.
	HTTPRequestTimeout = 5 * time.Second

	// ShutdownTimeout is how long we wait for in-flight work to complete during shutdown.
	ShutdownTimeout = 15 * time.Second
)

// # Storage

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// # Interaction

const (
	// InteractionTimeout bounds the work done before answering an
	// interaction; Discord drops answers that arrive after three seconds.
	InteractionTimeout = 2500 * time.Millisecond

	// PageSize is the number of entries rendered per browse page.
	PageSize = 10

	// SearchLimit caps title-fragment search results.
	SearchLimit = 10

	// SelectMenuLimit is Discord's cap on options per select menu.
	SelectMenuLimit = 25

	// EmbeddedSessionTTL is the default inactivity window of panels in the
	// embedded-store variant.
	EmbeddedSessionTTL = 180 * time.Second

	// SessionSweepInterval is how often expired in-memory panels are dropped.
	SessionSweepInterval = 30 * time.Second

	// RateLimitCleanupInterval is how often idle member limiters are removed.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a member must be idle before its limiter is deleted.
	RateLimitClientTTL = 3 * time.Minute

	// HTTPRateLimitRPS and HTTPRateLimitBurst throttle health checks per client IP.
	HTTPRateLimitRPS   = 10
	HTTPRateLimitBurst = 20
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderContentType   = "Content-Type"
)

// # Redis Prefixes

const (
	RedisPrefixSession = "redherring:session:"
)
