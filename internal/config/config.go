package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the simulator
type Config struct {
	Simulation SimulationConfig
	Redis      RedisConfig
	LogLevel   slog.Level
}

// SimulationConfig holds the engine settings
type SimulationConfig struct {
	Step        time.Duration
	MaxDuration time.Duration
	Fights      int
	// SeedIDs switches to sequential ids so runs are reproducible
	SeedIDs bool
}

// RedisConfig holds Redis-specific configuration. An empty URL keeps fight records in
// memory.
type RedisConfig struct {
	URL       string
	ResultTTL time.Duration
}

const (
	defaultStep        = 15625 * time.Microsecond
	defaultMaxDuration = 2 * time.Minute
	defaultFights      = 4
	defaultResultTTL   = 7 * 24 * time.Hour
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Simulation: SimulationConfig{
			Step:        getEnvAsDurationOrDefault("SIM_STEP", defaultStep),
			MaxDuration: getEnvAsDurationOrDefault("SIM_MAX_DURATION", defaultMaxDuration),
			Fights:      getEnvAsIntOrDefault("SIM_FIGHTS", defaultFights),
			SeedIDs:     getEnvAsBoolOrDefault("SIM_SEED_IDS", false),
		},
		Redis: RedisConfig{
			URL:       os.Getenv("REDIS_URL"),
			ResultTTL: getEnvAsDurationOrDefault("REDIS_RESULT_TTL", defaultResultTTL),
		},
	}

	level, err := ParseLogLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values a flag override may also have changed
func (c *Config) Validate() error {
	if c.Simulation.Step <= 0 {
		return fmt.Errorf("SIM_STEP must be positive, got %s", c.Simulation.Step)
	}
	if c.Simulation.MaxDuration < c.Simulation.Step {
		return fmt.Errorf("SIM_MAX_DURATION must be at least one step, got %s", c.Simulation.MaxDuration)
	}
	if c.Simulation.Fights <= 0 {
		return fmt.Errorf("SIM_FIGHTS must be positive, got %d", c.Simulation.Fights)
	}
	if c.Redis.ResultTTL <= 0 {
		return fmt.Errorf("REDIS_RESULT_TTL must be positive, got %s", c.Redis.ResultTTL)
	}
	return nil
}

// ParseLogLevel maps debug, info, warn and error to slog levels
func ParseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", value)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
