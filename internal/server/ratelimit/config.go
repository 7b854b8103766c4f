package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config controls the limiter. Zero values are replaced with defaults by
// LoadConfig.
type Config struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	CleanupInterval   time.Duration
}

// DefaultConfig returns the stock limits: 30 requests per minute with a
// burst of 10, suitable for an API that runs a model call per request.
func DefaultConfig() Config {
	return Config{
		Enabled:           true,
		RequestsPerMinute: 30,
		Burst:             10,
		CleanupInterval:   10 * time.Minute,
	}
}

// LoadConfig reads the limiter configuration from the environment,
// falling back to DefaultConfig for unset values. Recognized variables:
// RATE_LIMIT_ENABLED, RATE_LIMIT_RPM, RATE_LIMIT_BURST.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPM"); v != "" {
		if rpm, err := strconv.Atoi(v); err == nil && rpm > 0 {
			cfg.RequestsPerMinute = rpm
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if burst, err := strconv.Atoi(v); err == nil && burst > 0 {
			cfg.Burst = burst
		}
	}
	return cfg
}
