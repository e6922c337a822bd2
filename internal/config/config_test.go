package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.True(t, cfg.Database.SeedDefault)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 600, cfg.Redis.SubjectTTL)
	assert.False(t, cfg.Quiz.StrictAttempts)
	assert.Equal(t, 6000, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "debug", cfg.LogLevel())
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: release
database:
  driver: sqlite
  path: test.db
quiz:
  strict_attempts: true
cors:
  allowed_origins:
    - http://example.com
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.Path)
	assert.True(t, cfg.Quiz.StrictAttempts)
	assert.Equal(t, []string{"http://example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: \"9090\"\n")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("QUIZ_STRICT_ATTEMPTS", "true")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.True(t, cfg.Quiz.StrictAttempts)
	assert.Equal(t, "warn", cfg.LogLevel())
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "database:\n  driver: oracle\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "rate_limit:\n  max_requests: 0\n"))
	assert.Error(t, err)
}
