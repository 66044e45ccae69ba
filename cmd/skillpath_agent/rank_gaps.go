package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillpath/internal/config"
	"github.com/jonathan/skillpath/internal/gaps"
	"github.com/jonathan/skillpath/internal/normalize"
	"github.com/jonathan/skillpath/internal/types"
)

var rankGapsCmd = &cobra.Command{
	Use:   "rank-gaps",
	Short: "Rank missing skills across scored roles",
	Long:  "Aggregate the missing skills of a scored role list into gap entries ranked by how many roles each skill blocks, with alphabetical tie-breaking.",
	RunE:  runRankGaps,
}

var (
	rankSkillsFile string
	rankRolesFile  string
	rankOutputFile string
	rankAliasPath  string
)

func init() {
	rankGapsCmd.Flags().StringVarP(&rankSkillsFile, "skills", "s", "", "Path to JSON array of raw skill strings (required)")
	rankGapsCmd.Flags().StringVar(&rankRolesFile, "roles", "", "Path to scored roles JSON array (required)")
	rankGapsCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	rankGapsCmd.Flags().StringVar(&rankAliasPath, "alias-table", "", "Path to skill alias table JSON (optional)")
	_ = rankGapsCmd.MarkFlagRequired("skills")
	_ = rankGapsCmd.MarkFlagRequired("roles")

	rootCmd.AddCommand(rankGapsCmd)
}

func runRankGaps(_ *cobra.Command, _ []string) error {
	skillsContent, err := os.ReadFile(rankSkillsFile)
	if err != nil {
		return fmt.Errorf("failed to read skills file: %w", err)
	}
	var rawSkills []string
	if err := json.Unmarshal(skillsContent, &rawSkills); err != nil {
		return fmt.Errorf("failed to parse skills JSON: %w", err)
	}

	rolesContent, err := os.ReadFile(rankRolesFile)
	if err != nil {
		return fmt.Errorf("failed to read roles file: %w", err)
	}
	var scored []types.ScoredRole
	if err := json.Unmarshal(rolesContent, &scored); err != nil {
		return fmt.Errorf("failed to parse roles JSON: %w", err)
	}

	aliases, err := config.LoadAliasTable(rankAliasPath)
	if err != nil {
		return err
	}

	skills := normalize.NewNormalizer(aliases).Normalize(rawSkills)
	entries := gaps.Rank(scored, skills)

	jsonBytes, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeOutput(rankOutputFile, jsonBytes)
}
