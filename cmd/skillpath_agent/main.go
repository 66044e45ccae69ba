// Package main provides the entry point for the SkillPath career analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillpath_agent",
	Short: "SkillPath career gap analysis",
	Long:  "SkillPath turns parsed resume skills and model role suggestions into deterministic match scores, ranked skill gaps, and a prerequisite-ordered learning roadmap.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
