package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillpath/internal/config"
	"github.com/jonathan/skillpath/internal/normalize"
)

var normalizeSkillsCmd = &cobra.Command{
	Use:   "normalize-skills",
	Short: "Normalize raw skill strings into a canonical skill set",
	Long:  "Normalize a JSON array of raw skill strings into a deduplicated, alphabetically ordered skill set with canonical names and recorded surface forms.",
	RunE:  runNormalizeSkills,
}

var (
	normalizeInputFile  string
	normalizeOutputFile string
	normalizeAliasPath  string
)

func init() {
	normalizeSkillsCmd.Flags().StringVarP(&normalizeInputFile, "in", "i", "", "Path to JSON array of raw skill strings (required)")
	normalizeSkillsCmd.Flags().StringVarP(&normalizeOutputFile, "out", "o", "", "Path to output skill set JSON (defaults to stdout)")
	normalizeSkillsCmd.Flags().StringVar(&normalizeAliasPath, "alias-table", "", "Path to skill alias table JSON (optional, defaults to the built-in table)")
	_ = normalizeSkillsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(normalizeSkillsCmd)
}

func runNormalizeSkills(_ *cobra.Command, _ []string) error {
	inputContent, err := os.ReadFile(normalizeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var rawSkills []string
	if err := json.Unmarshal(inputContent, &rawSkills); err != nil {
		return fmt.Errorf("failed to parse skills JSON: %w", err)
	}

	aliases, err := config.LoadAliasTable(normalizeAliasPath)
	if err != nil {
		return err
	}

	skills := normalize.NewNormalizer(aliases).Normalize(rawSkills)

	jsonBytes, err := json.MarshalIndent(skills, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeOutput(normalizeOutputFile, jsonBytes)
}

// writeOutput writes JSON to a file, or stdout when no path is given.
func writeOutput(path string, jsonBytes []byte) error {
	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", path)
	return nil
}
