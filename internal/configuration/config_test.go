package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carscope/internal/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGetConfigDefaults(t *testing.T) {
	path := writeConfig(t, `auth_secret_key = "test-secret-key"`)

	config, err := GetConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", config.ServerAddress)
	assert.Equal(t, "mongodb://localhost:27017", config.DatabaseURI)
	assert.Equal(t, 30*time.Second, config.AlertCheckInterval)
	assert.Equal(t, 5*time.Minute, config.OfferCacheTTL)
	assert.Equal(t, 2*time.Second, config.RecognitionDelay)
	assert.Equal(t, logger.LevelInfo, config.LogLevel)
	assert.NotNil(t, config.AuthSecretKey)
}

func TestGetConfigFull(t *testing.T) {
	path := writeConfig(t, `
server_address = "0.0.0.0:9000"
database_uri = "mongodb://db:27017"
redis_address = "redis:6379"
alert_check_interval = "1m"
offer_cache_ttl = "10m"
recognition_delay = "500ms"
log_level = "debug"
auth_secret_key = "test-secret-key"
`)

	config, err := GetConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", config.ServerAddress)
	assert.Equal(t, "redis:6379", config.RedisAddress)
	assert.Equal(t, time.Minute, config.AlertCheckInterval)
	assert.Equal(t, 10*time.Minute, config.OfferCacheTTL)
	assert.Equal(t, 500*time.Millisecond, config.RecognitionDelay)
	assert.Equal(t, logger.LevelDebug, config.LogLevel)
}

func TestGetConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing auth secret", content: `server_address = "localhost:8080"`},
		{name: "alert interval too short", content: "auth_secret_key = \"k\"\nalert_check_interval = \"1s\""},
		{name: "bad alert interval", content: "auth_secret_key = \"k\"\nalert_check_interval = \"soon\""},
		{name: "bad log level", content: "auth_secret_key = \"k\"\nlog_level = \"verbose\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestGetConfigMissingFile(t *testing.T) {
	_, err := GetConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
