package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DEV_MODE", "true") // sin secreto hace falta dev mode

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, StoreFile, cfg.Store)
	require.Equal(t, "./data", cfg.DataDir)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.True(t, cfg.DevMode)
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	t.Setenv("DEV_MODE", "true")
	t.Setenv("STORE", "redis")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("DEV_MODE", "true")
	t.Setenv("STORE", "postgres")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_SecretRequiredOutsideDevMode(t *testing.T) {
	t.Setenv("DEV_MODE", "false")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("SESSION_SECRET", "super-secret")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "super-secret", cfg.SessionSecret)
}
