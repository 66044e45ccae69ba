package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/skillpath/internal/db"
	"github.com/jonathan/skillpath/internal/types"
)

// persistResult stores the inputs and final result of an analysis run.
// Callers treat any error as a warning: persistence never fails the run.
func persistResult(ctx context.Context, databaseURL, source string, rawSkills []string, suggestions json.RawMessage, result *types.PipelineResult) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.CreateRun(ctx, result.RunID, source); err != nil {
		return err
	}

	status := "completed"
	if err := database.SaveArtifact(ctx, result.RunID, db.StageRawSkills, rawSkills); err != nil {
		status = "failed"
	}
	if err := database.SaveArtifact(ctx, result.RunID, db.StageSuggestions, suggestions); err != nil {
		status = "failed"
	}
	if err := database.SaveResult(ctx, result); err != nil {
		status = "failed"
	}

	if err := database.CompleteRun(ctx, result.RunID, status); err != nil {
		return err
	}
	if status == "failed" {
		return fmt.Errorf("one or more artifacts could not be saved for run %s", result.RunID)
	}
	return nil
}
