package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillpath/internal/gaps"
	"github.com/jonathan/skillpath/internal/normalize"
	"github.com/jonathan/skillpath/internal/payload"
	"github.com/jonathan/skillpath/internal/roadmap"
	"github.com/jonathan/skillpath/internal/scoring"
	"github.com/jonathan/skillpath/internal/types"
)

// Input is the external payload a single request hands to the pipeline.
// RawSkills comes from the resume-extraction collaborator; RoleSuggestions
// is the model collaborator's response, passed through untouched so the
// pipeline validates it at the boundary.
type Input struct {
	RawSkills       []string
	RoleSuggestions json.RawMessage
}

// Orchestrator runs the core pipeline. It is constructed once with its
// collaborator configuration (alias table, effort and prerequisite tables,
// roadmap cap) and holds no per-request state: every Run call owns its
// intermediate data exclusively, so concurrent requests never share
// mutable state and an abandoned request needs no cleanup.
type Orchestrator struct {
	norm        *normalize.Normalizer
	scorer      *scoring.Scorer
	roadmapOpts roadmap.Options
}

// New creates an Orchestrator. The prerequisite table is validated here so
// a configuration defect surfaces at startup rather than on the first
// request.
func New(aliases normalize.AliasTable, roadmapOpts roadmap.Options) (*Orchestrator, error) {
	if err := roadmapOpts.Prereqs.Validate(); err != nil {
		return nil, err
	}
	norm := normalize.NewNormalizer(aliases)
	return &Orchestrator{
		norm:        norm,
		scorer:      scoring.NewScorer(norm),
		roadmapOpts: roadmapOpts,
	}, nil
}

// Run executes the pipeline for one request:
// received -> normalized -> scored -> ranked -> roadmap_built -> completed.
// On success it returns exactly one fully populated PipelineResult; on
// failure a StageError naming the stage that aborted the run. Per-role
// problems never abort — they are aggregated into the result's report.
func (o *Orchestrator) Run(ctx context.Context, in Input) (*types.PipelineResult, error) {
	// Received: reject malformed external payloads before any processing.
	if len(in.RawSkills) == 0 {
		return nil, &StageError{Stage: StageReceived, Err: &payload.ValidationError{
			Errors: []payload.FieldError{{Field: "raw_skills", Message: "no skills provided"}},
		}}
	}
	roles, decodeReports, err := payload.DecodeRoleSuggestions(in.RoleSuggestions)
	if err != nil {
		return nil, &StageError{Stage: StageReceived, Err: err}
	}

	// Normalized.
	skills := o.norm.Normalize(in.RawSkills)
	if skills.Len() == 0 {
		return nil, &StageError{Stage: StageNormalized, Err: &payload.ValidationError{
			Errors: []payload.FieldError{{Field: "raw_skills", Message: "every skill entry was blank"}},
		}}
	}

	// Scored: per-role failures are absorbed, an empty result is fatal.
	scored, scoreReports, err := o.scorer.ScoreRoles(ctx, skills, roles)
	if err != nil {
		return nil, &StageError{Stage: StageScored, Err: err}
	}
	invalidRoles := append(decodeReports, scoreReports...)
	if len(scored) == 0 {
		return nil, &StageError{Stage: StageScored, Err: &NoViableRolesError{Rejected: len(invalidRoles)}}
	}

	// Ranked.
	gapList := gaps.Rank(scored, skills)

	// RoadmapBuilt.
	steps, dropped, err := roadmap.Synthesize(gapList, o.roadmapOpts)
	if err != nil {
		return nil, &StageError{Stage: StageRoadmapBuilt, Err: err}
	}

	// Completed.
	return &types.PipelineResult{
		RunID:   uuid.New(),
		Skills:  *skills,
		Roles:   scored,
		Gaps:    gapList,
		Roadmap: steps,
		Report: types.RunReport{
			InvalidRoles: invalidRoles,
			DroppedGaps:  dropped,
		},
		CreatedAt: time.Now().UTC(),
	}, nil
}
