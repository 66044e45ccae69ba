package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillpath/internal/extract"
	"github.com/jonathan/skillpath/internal/llm"
	"github.com/jonathan/skillpath/internal/suggest"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract raw skill strings from a resume PDF",
	Long:  "Extract the text of a resume PDF and ask the model collaborator for the raw skill strings it mentions. The output feeds normalize-skills or the analyze pipeline.",
	RunE:  runParseResume,
}

var (
	parseResumeFile   string
	parseResumeOutput string
	parseResumeAPIKey string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeFile, "resume", "r", "", "Path to resume PDF (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	parseResumeCmd.Flags().StringVar(&parseResumeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = parseResumeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	apiKey := parseResumeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	text, err := extract.TextFromPDF(parseResumeFile)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	ctx := context.Background()
	client, err := llm.NewGeminiClient(ctx, apiKey, llm.DefaultModel)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	skills, err := suggest.ParseResumeSkills(ctx, client, text)
	if err != nil {
		return fmt.Errorf("failed to parse resume skills: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(skills, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeOutput(parseResumeOutput, jsonBytes)
}
