// Package dependency wires the agent's services using go.uber.org/dig.
package dependency

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/dig"

	"github.com/reagentic/reagent/config"
	"github.com/reagentic/reagent/patterns/react"
	"github.com/reagentic/reagent/providers/ai"
	"github.com/reagentic/reagent/providers/ai/gemini"
	"github.com/reagentic/reagent/providers/ai/openai"
	"github.com/reagentic/reagent/providers/observability"
	"github.com/reagentic/reagent/providers/observability/slogobs"
	"github.com/reagentic/reagent/providers/tool"
	"github.com/reagentic/reagent/providers/tool/calculator"
	"github.com/reagentic/reagent/providers/tool/clock"
	"github.com/reagentic/reagent/providers/tool/weather"
	"github.com/reagentic/reagent/providers/tool/websearch"
)

// Container holds the resolved service singletons. Callers use the typed
// getter methods; they never need to import dig directly.
type Container struct {
	provider ai.Provider
	catalog  *tool.Catalog
	observer observability.Provider
	agent    *react.Agent
}

func (c *Container) Provider() ai.Provider            { return c.provider }
func (c *Container) Catalog() *tool.Catalog           { return c.catalog }
func (c *Container) Observer() observability.Provider { return c.observer }
func (c *Container) Agent() *react.Agent              { return c.agent }

// New builds and wires all services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newObserver); err != nil {
		return nil, err
	}
	if err := d.Provide(newProvider); err != nil {
		return nil, err
	}
	if err := d.Provide(newCatalog); err != nil {
		return nil, err
	}
	if err := d.Provide(newAgent); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		provider ai.Provider,
		catalog *tool.Catalog,
		observer observability.Provider,
		agent *react.Agent,
	) {
		result = &Container{
			provider: provider,
			catalog:  catalog,
			observer: observer,
			agent:    agent,
		}
	})
	return result, err
}

func newObserver(cfg *config.Config) observability.Provider {
	return slogobs.New(slogobs.WithLevel(logLevel(cfg.LogLevel)))
}

func newProvider(cfg *config.Config) (ai.Provider, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.New(), nil
	case config.ProviderOpenAI:
		return openai.New(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func newCatalog() *tool.Catalog {
	return tool.NewCatalogWithTools(
		calculator.NewCalculatorTool(),
		calculator.NewAddTool(),
		calculator.NewMultiplyTool(),
		websearch.NewWebSearchTool(),
		clock.NewClockTool(nil),
		weather.NewWeatherTool(),
	)
}

func newAgent(cfg *config.Config, provider ai.Provider, catalog *tool.Catalog, observer observability.Provider) (*react.Agent, error) {
	return react.New(provider, catalog, observer, react.Config{
		Model:          cfg.Model,
		Temperature:    cfg.Temperature,
		MaxTokens:      cfg.MaxTokens,
		SystemPrompt:   cfg.SystemPrompt,
		MaxIterations:  cfg.MaxIterations,
		RequestTimeout: time.Duration(cfg.RequestTimeout),
	})
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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
