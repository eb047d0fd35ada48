// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/redherring/internal/platform/config"
)

func TestLoad_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/rh")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Zero(t, cfg.SessionTTL(), "networked panels never expire by default")
	assert.Error(t, cfg.RequireBot())
}

func TestSessionTTL(t *testing.T) {
	t.Run("embedded_default", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 180*time.Second, cfg.SessionTTL())
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		t.Setenv("FORM_TIMEOUT", "45s")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 45*time.Second, cfg.SessionTTL())
	})
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RH_DOTENV_MARKER=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("RH_DOTENV_MARKER") })

	require.NoError(t, config.LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("RH_DOTENV_MARKER"))

	assert.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
