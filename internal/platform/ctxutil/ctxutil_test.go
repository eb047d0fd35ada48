// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/redherring/internal/platform/ctxutil"
)

/*
TestContext_InteractionID verifies that interaction IDs can be injected and retrieved.
*/
func TestContext_InteractionID(t *testing.T) {
	ctx := context.Background()

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetInteractionID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithInteractionID(ctx, "1209384756")
	assert.Equal(t, "1209384756", ctxutil.GetInteractionID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_UserID verifies that the invoking member can be stored in context.
*/
func TestContext_UserID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetUserID(ctx))

	ctx = ctxutil.WithUserID(ctx, "42")
	assert.Equal(t, "42", ctxutil.GetUserID(ctx))
}

func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "0193-abc")
	assert.Equal(t, "0193-abc", ctxutil.GetRequestID(ctx))
}
