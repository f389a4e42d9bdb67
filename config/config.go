package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "30s" or "2m" parse with
// time.ParseDuration semantics.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Supported provider names.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds all runtime settings for the agent. Everything is explicit;
// there is no hidden global state.
type Config struct {
	// Provider selects the LLM backend: "gemini" or "openai".
	Provider string `yaml:"provider"`

	// Model is the provider-specific model identifier. Empty selects the
	// provider's default model.
	Model string `yaml:"model"`

	// Temperature is the sampling temperature.
	Temperature float32 `yaml:"temperature"`

	// MaxTokens bounds the completion size. Zero leaves it to the provider.
	MaxTokens int `yaml:"max_tokens"`

	// MaxIterations bounds how many model calls one query may make.
	MaxIterations int `yaml:"max_iterations"`

	// RequestTimeout bounds each individual model call.
	RequestTimeout Duration `yaml:"request_timeout"`

	// SystemPrompt overrides the built-in ReAct prompt when non-empty.
	SystemPrompt string `yaml:"system_prompt"`

	// Verbose streams loop events to the terminal while answering.
	Verbose bool `yaml:"verbose"`

	// LogLevel sets the minimum log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Provider:       ProviderGemini,
		Model:          "gemini-1.5-flash",
		Temperature:    0.1,
		MaxIterations:  5,
		RequestTimeout: Duration(30 * time.Second),
		LogLevel:       "info",
	}
}

// Validate checks the config for values the agent cannot run with.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown provider %q (want %q or %q)", c.Provider, ProviderGemini, ProviderOpenAI)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2], got %v", c.Temperature)
	}
	return nil
}
