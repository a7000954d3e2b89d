package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, int64(50000), cfg.Dialogue.MinBudget)
	assert.Equal(t, time.Second, cfg.Queue.Delay)
	assert.Equal(t, "adpilot:entity-status", cfg.Redis.Channel)
	assert.Equal(t, "bedrock", cfg.Interpreter.Provider)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.vn,https://b.vn")
	t.Setenv("GRAPH_PAGE_ID", "123")
	t.Setenv("QUEUE_DELAY", "250ms")
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.vn", "https://b.vn"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "123", cfg.Graph.PageID)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.Delay)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}
