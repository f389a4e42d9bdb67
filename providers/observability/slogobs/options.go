package slogobs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Option is a functional option for configuring the Observer.
type Option func(*config)

type config struct {
	level  slog.Level
	output io.Writer
	json   bool
	logger *slog.Logger // when set, overrides the other options
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput sets the output writer for logs.
func WithOutput(output io.Writer) Option {
	return func(c *config) {
		c.output = output
	}
}

// WithJSON switches output to slog's JSON handler.
func WithJSON() Option {
	return func(c *config) {
		c.json = true
	}
}

// WithLogger uses an existing slog.Logger instead of building a handler.
// This option takes precedence over level, output, and format options.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// LevelFromEnv reads the REAGENT_LOG_LEVEL environment variable, accepting
// debug, info, warn, and error. Unset or unrecognized values map to INFO.
func LevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("REAGENT_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func applyOptions(opts ...Option) *config {
	cfg := &config{
		level:  LevelFromEnv(),
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
