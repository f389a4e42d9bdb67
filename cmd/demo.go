package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// demoQueries exercises every tool in the default catalog.
var demoQueries = []string{
	"What is 25 multiplied by 4, then add 50?",
	"What is LangGraph and how does it work?",
	"What is the current date and time?",
	"What's the weather like in Tokyo?",
	"If I have 3 apples costing $2 each and 5 oranges costing $1.50 each, what's my total cost?",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted set of queries through the agent",
	RunE:  runDemo,
}

func runDemo(_ *cobra.Command, _ []string) error {
	container, cfg, err := buildContainer()
	if err != nil {
		return err
	}
	agent := container.Agent()

	separator := strings.Repeat("=", 60)
	for i, q := range demoQueries {
		fmt.Println(separator)
		fmt.Printf("Demo %d/%d: %s\n", i+1, len(demoQueries), q)
		fmt.Println(separator)

		if err := runQuery(agent, cfg, q); err != nil {
			fmt.Printf("error: %v\n", err)
		}
		fmt.Println()
	}
	return nil
}
