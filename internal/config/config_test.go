package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"SIM_STEP", "SIM_MAX_DURATION", "SIM_FIGHTS", "SIM_SEED_IDS", "REDIS_URL", "REDIS_RESULT_TTL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15625*time.Microsecond, cfg.Simulation.Step)
	assert.Equal(t, 2*time.Minute, cfg.Simulation.MaxDuration)
	assert.Equal(t, 4, cfg.Simulation.Fights)
	assert.False(t, cfg.Simulation.SeedIDs)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 7*24*time.Hour, cfg.Redis.ResultTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIM_STEP", "10ms")
	t.Setenv("SIM_MAX_DURATION", "30s")
	t.Setenv("SIM_FIGHTS", "8")
	t.Setenv("SIM_SEED_IDS", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("REDIS_RESULT_TTL", "1h")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.Simulation.Step)
	assert.Equal(t, 30*time.Second, cfg.Simulation.MaxDuration)
	assert.Equal(t, 8, cfg.Simulation.Fights)
	assert.True(t, cfg.Simulation.SeedIDs)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, time.Hour, cfg.Redis.ResultTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "LOG_LEVEL", value: "loud"},
		{name: "zero fights", key: "SIM_FIGHTS", value: "0"},
		{name: "negative step", key: "SIM_STEP", value: "-1ms"},
		{name: "duration shorter than a step", key: "SIM_MAX_DURATION", value: "1ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnparsableValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIM_FIGHTS", "many")
	t.Setenv("SIM_STEP", "fast")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Simulation.Fights)
	assert.Equal(t, 15625*time.Microsecond, cfg.Simulation.Step)
}
