package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillpath/internal/config"
	"github.com/jonathan/skillpath/internal/links"
	"github.com/jonathan/skillpath/internal/normalize"
	"github.com/jonathan/skillpath/internal/payload"
	"github.com/jonathan/skillpath/internal/scoring"
	"github.com/jonathan/skillpath/internal/types"
)

var scoreRolesCmd = &cobra.Command{
	Use:   "score-roles",
	Short: "Score a role suggestions payload against a skill list",
	Long:  "Decode an untrusted role suggestions payload, score each candidate role against the normalized skill list, and emit the scored roles in canonical order together with a report of rejected roles.",
	RunE:  runScoreRoles,
}

var (
	scoreSkillsFile      string
	scoreSuggestionsFile string
	scoreOutputFile      string
	scoreAliasPath       string
)

func init() {
	scoreRolesCmd.Flags().StringVarP(&scoreSkillsFile, "skills", "s", "", "Path to JSON array of raw skill strings (required)")
	scoreRolesCmd.Flags().StringVar(&scoreSuggestionsFile, "suggestions", "", "Path to role suggestions JSON (required)")
	scoreRolesCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	scoreRolesCmd.Flags().StringVar(&scoreAliasPath, "alias-table", "", "Path to skill alias table JSON (optional)")
	_ = scoreRolesCmd.MarkFlagRequired("skills")
	_ = scoreRolesCmd.MarkFlagRequired("suggestions")

	rootCmd.AddCommand(scoreRolesCmd)
}

func runScoreRoles(_ *cobra.Command, _ []string) error {
	skillsContent, err := os.ReadFile(scoreSkillsFile)
	if err != nil {
		return fmt.Errorf("failed to read skills file: %w", err)
	}
	var rawSkills []string
	if err := json.Unmarshal(skillsContent, &rawSkills); err != nil {
		return fmt.Errorf("failed to parse skills JSON: %w", err)
	}

	suggestionsContent, err := os.ReadFile(scoreSuggestionsFile)
	if err != nil {
		return fmt.Errorf("failed to read suggestions file: %w", err)
	}

	aliases, err := config.LoadAliasTable(scoreAliasPath)
	if err != nil {
		return err
	}

	roles, decodeReports, err := payload.DecodeRoleSuggestions(suggestionsContent)
	if err != nil {
		return fmt.Errorf("failed to decode suggestions payload: %w", err)
	}

	norm := normalize.NewNormalizer(aliases)
	skills := norm.Normalize(rawSkills)

	scored, scoreReports, err := scoring.NewScorer(norm).ScoreRoles(context.Background(), skills, roles)
	if err != nil {
		return err
	}
	for i := range scored {
		scored[i].SearchLinks = links.BuildSearchLinks(scored[i].Title)
	}

	output := struct {
		Roles        []types.ScoredRole `json:"roles"`
		InvalidRoles []types.RoleReport `json:"invalid_roles,omitempty"`
	}{
		Roles:        scored,
		InvalidRoles: append(decodeReports, scoreReports...),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeOutput(scoreOutputFile, jsonBytes)
}
