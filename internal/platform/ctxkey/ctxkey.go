// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys used by the interaction pipeline.
//
// # Safety
//
// It is used to store and retrieve per-interaction values (member identity,
// interaction ID, logger). Using a private, unexported type for keys prevents
// collisions with third-party packages that might also use context for storage.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeyInteractionID is the context key for the Discord interaction ID.
	KeyInteractionID key = "interaction_id"

	// KeyRequestID is the context key for the liveness server's request ID.
	KeyRequestID key = "request_id"

	// KeyUser is the context key for the invoking member's user ID.
	KeyUser key = "user"

	// KeyLogger is the context key for the per-interaction [*log/slog.Logger].
	KeyLogger key = "logger"
)
