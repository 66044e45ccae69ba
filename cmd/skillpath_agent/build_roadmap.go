package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillpath/internal/config"
	"github.com/jonathan/skillpath/internal/roadmap"
	"github.com/jonathan/skillpath/internal/types"
)

var buildRoadmapCmd = &cobra.Command{
	Use:   "build-roadmap",
	Short: "Synthesize a learning roadmap from ranked gap entries",
	Long:  "Turn a ranked gap entry list into an ordered learning roadmap, honoring prerequisite ordering, effort tiers, and the step cap.",
	RunE:  runBuildRoadmap,
}

var (
	roadmapGapsFile   string
	roadmapOutputFile string
	roadmapEffortPath string
	roadmapPrereqPath string
	roadmapMaxSteps   int
)

func init() {
	buildRoadmapCmd.Flags().StringVar(&roadmapGapsFile, "gaps", "", "Path to gap entries JSON array (required)")
	buildRoadmapCmd.Flags().StringVarP(&roadmapOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	buildRoadmapCmd.Flags().StringVar(&roadmapEffortPath, "effort-table", "", "Path to skill effort tier table JSON (optional)")
	buildRoadmapCmd.Flags().StringVar(&roadmapPrereqPath, "prereq-table", "", "Path to skill prerequisite table JSON (optional)")
	buildRoadmapCmd.Flags().IntVar(&roadmapMaxSteps, "max-steps", config.DefaultMaxSteps, "Maximum roadmap steps (0 or negative for no cap)")

	_ = buildRoadmapCmd.MarkFlagRequired("gaps")

	rootCmd.AddCommand(buildRoadmapCmd)
}

func runBuildRoadmap(_ *cobra.Command, _ []string) error {
	gapsContent, err := os.ReadFile(roadmapGapsFile)
	if err != nil {
		return fmt.Errorf("failed to read gaps file: %w", err)
	}
	var entries []types.GapEntry
	if err := json.Unmarshal(gapsContent, &entries); err != nil {
		return fmt.Errorf("failed to parse gaps JSON: %w", err)
	}

	efforts, err := config.LoadEffortTable(roadmapEffortPath)
	if err != nil {
		return err
	}
	prereqs, err := config.LoadPrerequisiteTable(roadmapPrereqPath)
	if err != nil {
		return err
	}

	steps, dropped, err := roadmap.Synthesize(entries, roadmap.Options{
		MaxSteps: roadmapMaxSteps,
		Efforts:  efforts,
		Prereqs:  prereqs,
	})
	if err != nil {
		return err
	}

	output := struct {
		Steps       []types.RoadmapStep `json:"steps"`
		DroppedGaps int                 `json:"dropped_gaps,omitempty"`
	}{
		Steps:       steps,
		DroppedGaps: dropped,
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeOutput(roadmapOutputFile, jsonBytes)
}
