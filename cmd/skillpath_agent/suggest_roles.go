package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillpath/internal/config"
	"github.com/jonathan/skillpath/internal/llm"
	"github.com/jonathan/skillpath/internal/normalize"
	"github.com/jonathan/skillpath/internal/suggest"
)

var suggestRolesCmd = &cobra.Command{
	Use:   "suggest-roles",
	Short: "Request role suggestions from the model collaborator",
	Long:  "Send a normalized skill list to the model collaborator and emit the raw role suggestions payload. The payload is untrusted: validate it with score-roles or the analyze pipeline.",
	RunE:  runSuggestRoles,
}

var (
	suggestSkillsFile string
	suggestOutputFile string
	suggestAliasPath  string
	suggestCount      int
	suggestAPIKey     string
)

func init() {
	suggestRolesCmd.Flags().StringVarP(&suggestSkillsFile, "skills", "s", "", "Path to JSON array of raw skill strings (required)")
	suggestRolesCmd.Flags().StringVarP(&suggestOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	suggestRolesCmd.Flags().StringVar(&suggestAliasPath, "alias-table", "", "Path to skill alias table JSON (optional)")
	suggestRolesCmd.Flags().IntVar(&suggestCount, "count", config.DefaultRoleCount, "Number of role suggestions to request")
	suggestRolesCmd.Flags().StringVar(&suggestAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = suggestRolesCmd.MarkFlagRequired("skills")

	rootCmd.AddCommand(suggestRolesCmd)
}

func runSuggestRoles(_ *cobra.Command, _ []string) error {
	apiKey := suggestAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	skillsContent, err := os.ReadFile(suggestSkillsFile)
	if err != nil {
		return fmt.Errorf("failed to read skills file: %w", err)
	}
	var rawSkills []string
	if err := json.Unmarshal(skillsContent, &rawSkills); err != nil {
		return fmt.Errorf("failed to parse skills JSON: %w", err)
	}

	aliases, err := config.LoadAliasTable(suggestAliasPath)
	if err != nil {
		return err
	}
	skills := normalize.NewNormalizer(aliases).Normalize(rawSkills)
	if skills.Len() == 0 {
		return fmt.Errorf("every skill entry was blank")
	}

	ctx := context.Background()
	client, err := llm.NewGeminiClient(ctx, apiKey, llm.DefaultModel)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	payload, err := suggest.SuggestRoles(ctx, client, skills, suggestCount)
	if err != nil {
		return fmt.Errorf("failed to request role suggestions: %w", err)
	}

	return writeOutput(suggestOutputFile, payload)
}
