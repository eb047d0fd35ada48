// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlite opens the single-file database used by the embedded
// variant of the bot.
//
// # Architecture
//
// The pure-Go modernc.org/sqlite driver is used so the binary builds without
// cgo. The handle is limited to one open connection: SQLite serializes
// writers anyway and a single connection avoids SQLITE_BUSY between
// concurrent command handlers.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	// registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

const (
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
	// pragmas applied to every connection.
	pragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
)

// Open creates the parent directory of path if needed and opens the database.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+pragmas)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("content_store_connected", slog.String("backend", "sqlite"), slog.String("path", path))
	return db, nil
}

// Ping verifies that the database file is reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}
