package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddress)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 3*time.Second, cfg.Storage.Timeout)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Empty(t, cfg.Notify.WebhookURL)
}

func TestLoad_YAMLThenEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "applause.yaml")
	body := []byte(`
listenAddress: ":9000"
storage:
  backend: badger
  badgerPath: /tmp/applause
  timeout: 2s
notify:
  webhookURL: http://hooks.example/one
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	t.Setenv("APPLAUSE_NOTIFY_WEBHOOK_URL", "http://hooks.example/two")
	t.Setenv("APPLAUSE_HISTORY_LIMIT", "50")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddress)
	assert.Equal(t, BackendBadger, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/applause", cfg.Storage.BadgerPath)
	assert.Equal(t, 2*time.Second, cfg.Storage.Timeout)
	assert.Equal(t, "http://hooks.example/two", cfg.Notify.WebhookURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 50, cfg.HistoryLimit)
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DB_DSN", "postgres://localhost/applause")
	t.Setenv("MAKE_WEBHOOK_URL", "http://hook.make.example/abc")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.ListenAddress)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, "postgres://localhost/applause", cfg.Storage.PostgresDSN)
	assert.Equal(t, "http://hook.make.example/abc", cfg.Notify.WebhookURL)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("APPLAUSE_STORAGE_BACKEND", "redis")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("APPLAUSE_STORAGE_BACKEND", "postgres")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_IgnoresUnprefixedEnv(t *testing.T) {
	t.Setenv("TIMEOUT", "1ms")
	t.Setenv("BACKEND", "redis")
	t.Setenv("WORKERS", "0")
	t.Setenv("LEVEL", "trace")
	t.Setenv("FORMAT", "xml")
	t.Setenv("APP", "other")
	t.Setenv("LISTEN_ADDRESS", ":1")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_PrefixedNestedEnv(t *testing.T) {
	t.Setenv("APPLAUSE_STORAGE_TIMEOUT", "750ms")
	t.Setenv("APPLAUSE_NOTIFY_TIMEOUT", "9s")
	t.Setenv("APPLAUSE_NOTIFY_WORKERS", "4")
	t.Setenv("APPLAUSE_STORAGE_POSTGRES_DSN", "postgres://db/applause")
	t.Setenv("APPLAUSE_LOG_APP", "ledger-test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.Storage.Timeout)
	assert.Equal(t, 9*time.Second, cfg.Notify.Timeout)
	assert.Equal(t, 4, cfg.Notify.Workers)
	assert.Equal(t, "postgres://db/applause", cfg.Storage.PostgresDSN)
	assert.Equal(t, "ledger-test", cfg.Log.App)
}
