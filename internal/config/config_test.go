package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "store.db", cfg.Store.Path)
	assert.Equal(t, 3, cfg.Assistant.MaxSuggestions)
	assert.Equal(t, "en-US", cfg.Assistant.SpeechLang)
	assert.Equal(t, time.Second, cfg.Services.SimulatedLatency)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_PATH", "/tmp/test-store.db")
	t.Setenv("ASSISTANT_MAX_SUGGESTIONS", "5")
	t.Setenv("SERVICES_SIMULATED_LATENCY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/test-store.db", cfg.Store.Path)
	assert.Equal(t, 5, cfg.Assistant.MaxSuggestions)
	assert.Equal(t, 250*time.Millisecond, cfg.Services.SimulatedLatency)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ASSISTANT_MAX_SUGGESTIONS", "lots")
	t.Setenv("SERVICES_SIMULATED_LATENCY", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Assistant.MaxSuggestions)
	assert.Equal(t, time.Second, cfg.Services.SimulatedLatency)
}
