package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/skillpath/internal/types"
)

// Artifact stage names for analysis runs.
const (
	StageRawSkills   = "raw_skills"
	StageSuggestions = "role_suggestions"
	StageResult      = "result"
)

// Run represents an analysis run record
type Run struct {
	ID          uuid.UUID
	Source      string
	Status      string
	CompletedAt *string
}

// SaveResult stores the final pipeline result for a run
func (db *DB) SaveResult(ctx context.Context, result *types.PipelineResult) error {
	return db.SaveArtifact(ctx, result.RunID, StageResult, result)
}

// GetResultByRunID loads a stored pipeline result
func (db *DB) GetResultByRunID(ctx context.Context, runID uuid.UUID) (*types.PipelineResult, error) {
	content, err := db.GetArtifact(ctx, runID, StageResult)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var result types.PipelineResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &result, nil
}
