// Package logger builds the application's zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls log output.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unknown values
	// fall back to info.
	Level string `json:"level"`
	// Pretty switches from JSON lines to the human-readable console
	// writer. Intended for interactive CLI use.
	Pretty bool `json:"pretty"`
}

// New builds a logger from config, writing to stderr so structured output
// never mixes with result JSON on stdout.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
