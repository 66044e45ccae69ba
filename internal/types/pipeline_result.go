package types

import (
	"time"

	"github.com/google/uuid"
)

// RunReport aggregates non-fatal conditions observed during a pipeline run:
// candidate roles excluded from scoring and the number of gap entries
// dropped when the roadmap was capped. Truncation is informational, never
// an error.
type RunReport struct {
	InvalidRoles []RoleReport `json:"invalid_roles,omitempty"`
	DroppedGaps  int          `json:"dropped_gaps,omitempty"`
}

// PipelineResult is the immutable aggregate produced once per request by
// the orchestrator. It is never partially populated: a run either yields a
// complete result or a typed failure.
type PipelineResult struct {
	RunID     uuid.UUID     `json:"run_id"`
	Skills    SkillSet      `json:"skills"`
	Roles     []ScoredRole  `json:"roles"`
	Gaps      []GapEntry    `json:"gaps"`
	Roadmap   []RoadmapStep `json:"roadmap"`
	Report    RunReport     `json:"report"`
	CreatedAt time.Time     `json:"created_at"`
}
