// Package cmd implements the reagent CLI using cobra.
package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"

	"github.com/reagentic/reagent/config"
	"github.com/reagentic/reagent/internal/dependency"
	"github.com/reagentic/reagent/patterns/react"
)

const version = "0.1.0"

var (
	configPath string
	query      string
	verbose    bool
)

// rootCmd is the base command. Without a subcommand it runs the agent,
// either as a one-shot query or as an interactive session.
var rootCmd = &cobra.Command{
	Use:   "reagent",
	Short: "reagent - a ReAct agent with tool calling",
	Long: "reagent runs a ReAct (Reason + Act) loop over an LLM provider with a\n" +
		"small catalog of tools: a calculator, a demo web search, a clock, and\n" +
		"a weather lookup.",
	RunE: runRoot,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Stream loop events while answering")
	rootCmd.Flags().StringVarP(&query, "query", "q", "", "Send a single query and exit")

	rootCmd.AddCommand(demoCmd)
}

var exitCommands = map[string]bool{
	"exit":  true,
	"quit":  true,
	"/exit": true,
	"/quit": true,
	":q":    true,
}

func runRoot(_ *cobra.Command, _ []string) error {
	container, cfg, err := buildContainer()
	if err != nil {
		return err
	}

	if query != "" {
		return runQuery(container.Agent(), cfg, query)
	}
	return runInteractive(container.Agent(), cfg)
}

// buildContainer loads the config, applies CLI flags, and wires the services.
func buildContainer() (*dependency.Container, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}

	container, err := dependency.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return container, cfg, nil
}

// runQuery sends one query to the agent and prints the answer.
func runQuery(agent *react.Agent, cfg *config.Config, q string) error {
	ctx := context.Background()

	if cfg.Verbose {
		answer, err := streamQuery(ctx, agent, q)
		if err != nil {
			return err
		}
		fmt.Printf("\nAnswer: %s\n", answer)
		return nil
	}

	answer, err := agent.Invoke(ctx, q)
	if errors.Is(err, react.ErrMaxIterations) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		err = nil
	}
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}

// streamQuery runs the agent and prints each loop event as it happens.
// It returns the final answer, treating the iteration bound as a warning
// rather than a failure so the partial answer still reaches the user.
func streamQuery(ctx context.Context, agent *react.Agent, q string) (string, error) {
	var answer string
	for event, err := range agent.Stream(ctx, q).Iter() {
		if err != nil {
			if errors.Is(err, react.ErrMaxIterations) {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
				answer = event.Content
				break
			}
			return "", err
		}
		printEvent(event)
		if event.Type == react.EventFinalAnswer {
			answer = event.Content
		}
	}
	return answer, nil
}

func printEvent(event react.Event) {
	switch event.Type {
	case react.EventIterationStart:
		fmt.Printf("--- iteration %d ---\n", event.Iteration)
	case react.EventAssistantMessage:
		if event.Content != "" {
			fmt.Printf("assistant: %s\n", event.Content)
		}
	case react.EventToolCall:
		fmt.Printf("tool call: %s(%s)\n", event.ToolName, event.ToolInput)
	case react.EventToolResult:
		fmt.Printf("tool result: %s\n", event.ToolOutput)
	}
}

// runInteractive starts the REPL loop: reads lines from stdin and sends each
// to the agent, one conversation per line.
func runInteractive(agent *react.Agent, cfg *config.Config) error {
	fmt.Println("Interactive mode (type 'exit' or Ctrl+D to quit)")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if exitCommands[strings.ToLower(line)] {
			return nil
		}

		if err := runQuery(agent, cfg, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		fmt.Println()
	}
}
