// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ratelimit throttles interactions per member using token buckets.

Each key (a Discord user ID) owns one [rate.Limiter]. Idle keys are dropped
by a background reaper so the map does not grow with every member who ever
ran a command.
*/
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter holds one token bucket per key.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

// New creates a limiter allowing rps events per second with the given burst.
// A non-positive rps disables limiting.
func New(rps float64, burst int, idleTTL time.Duration) *Limiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}

	return &Limiter{
		clients: make(map[string]*client),
		limit:   limit,
		burst:   burst,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Allow reports whether key may proceed now, consuming one token if so.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	info, found := l.clients[key]
	if !found {
		info = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = info
	}
	info.lastSeen = now

	return info.limiter.AllowN(now, 1)
}

// Cleanup removes keys idle for longer than the idle TTL and returns how
// many were removed.
func (l *Limiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	now := l.now()
	for key, info := range l.clients {
		if now.Sub(info.lastSeen) > l.idleTTL {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Run calls [Limiter.Cleanup] every interval until context is cancelled.
func (l *Limiter) Run(context context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Cleanup()
		case <-context.Done():
			return
		}
	}
}
