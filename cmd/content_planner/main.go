// Package main provides the entry point for the content planner CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "content_planner",
	Short: "Content Brief Planner",
	Long:  "Content planner turns candidate topics into a deduplicated, scheduled set of content briefs with unique primary keywords, intent labels, internal-link plans, and cannibalization verdicts.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
