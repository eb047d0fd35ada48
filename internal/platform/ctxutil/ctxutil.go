// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/redherring/internal/platform/ctxkey"
)

// # Interaction Tracing

// WithInteractionID returns a new context with the Discord interaction ID attached.
func WithInteractionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyInteractionID, id)
}

// GetInteractionID retrieves the interaction ID from the context.
// Returns an empty string if not found.
func GetInteractionID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyInteractionID).(string)
	return id
}

// WithRequestID returns a new context with the HTTP request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the HTTP request ID, or "" when absent.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity

// WithUserID returns a new context carrying the invoking member's user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, userID)
}

// GetUserID retrieves the invoking member's user ID, or "" when absent.
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyUser).(string)
	return id
}
