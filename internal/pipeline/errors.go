// Package pipeline sequences the skillpath core: normalize, score, rank,
// synthesize. It owns payload validation and failure translation at every
// hand-off.
package pipeline

import "fmt"

// Stage identifies a point in the pipeline state machine.
type Stage string

// Pipeline stages in execution order. A run either reaches StageCompleted
// or fails with a StageError naming where it stopped.
const (
	StageReceived     Stage = "received"
	StageNormalized   Stage = "normalized"
	StageScored       Stage = "scored"
	StageRanked       Stage = "ranked"
	StageRoadmapBuilt Stage = "roadmap_built"
	StageCompleted    Stage = "completed"
)

// StageError wraps a request-level failure with the stage it occurred at,
// so the hosting layer can produce an appropriate message without knowing
// pipeline internals.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline failed at stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NoViableRolesError is raised when every candidate role was filtered out:
// downstream stages are meaningless without at least one scored role.
type NoViableRolesError struct {
	Rejected int
}

func (e *NoViableRolesError) Error() string {
	return fmt.Sprintf("no viable candidate roles after filtering (%d rejected)", e.Rejected)
}
