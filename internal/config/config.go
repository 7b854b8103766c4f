// Package config provides configuration loading for the scoring service:
// defaults, then an optional JSON file, then environment variables. CLI
// flags are merged last by the command layer.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds every knob the service and CLI accept. All fields are
// optional in the JSON file; zero values fall back to defaults or env.
type Config struct {
	// Server
	Port      int    `json:"port,omitempty"`
	JWTSecret string `json:"-"` // env-only; never read from a file on disk

	// Model backends
	GeminiAPIKey   string `json:"-"` // env-only
	EmbeddingModel string `json:"embedding_model,omitempty"`
	NERURL         string `json:"ner_url,omitempty"`
	RegressionURL  string `json:"regression_url,omitempty"`

	// Pipeline
	Preset string `json:"preset,omitempty"`

	// Upload limit in bytes.
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty"`

	// Logging
	LogLevel  string `json:"log_level,omitempty"`
	LogPretty bool   `json:"log_pretty,omitempty"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Port:           8080,
		EmbeddingModel: "text-embedding-004",
		Preset:         PresetCanonical,
		MaxUploadBytes: 5 << 20,
		LogLevel:       "info",
	}
}

// Load builds the effective configuration: defaults, overlaid with the
// JSON file at path (when non-empty), overlaid with environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.mergeEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return nil
}

// mergeEnv overlays environment variables onto the config. Env wins over
// the file for everything it sets; secrets come only from env.
func (c *Config) mergeEnv() {
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.JWTSecret = os.Getenv("AUTH_JWT_SECRET")

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("NER_URL"); v != "" {
		c.NERURL = v
	}
	if v := os.Getenv("REGRESSION_URL"); v != "" {
		c.RegressionURL = v
	}
	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		c.EmbeddingModel = v
	}
	if v := os.Getenv("SCORING_PRESET"); v != "" {
		c.Preset = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks value ranges and preset names.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: max_upload_bytes must be positive")
	}
	if _, err := FusionPreset(c.Preset); err != nil {
		return err
	}
	return nil
}
