// Package scoring computes reproducible match scores for candidate roles
// against a normalized skill set.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/skillpath/internal/normalize"
	"github.com/jonathan/skillpath/internal/types"
)

// InvalidRoleError reports a candidate role that cannot be scored: empty
// title, no required skills, or required skills that all normalize to
// nothing. It is recoverable — the orchestrator excludes the role and
// continues the batch.
type InvalidRoleError struct {
	Title  string
	Reason string
}

func (e *InvalidRoleError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("invalid role: %s", e.Reason)
	}
	return fmt.Sprintf("invalid role %q: %s", e.Title, e.Reason)
}

// Scorer scores candidate roles against skill sets. Matching is exact on
// canonical names: the shared Normalizer resolves spelling variants, so
// scoring itself is a pure set intersection.
type Scorer struct {
	norm *normalize.Normalizer
}

// NewScorer creates a Scorer that canonicalizes required skills with the
// given normalizer. The normalizer must be the same one that produced the
// skill sets being scored, or matching silently degrades.
func NewScorer(norm *normalize.Normalizer) *Scorer {
	return &Scorer{norm: norm}
}

// Score scores a single candidate role against a skill set. The returned
// role's Matched and Missing lists partition the canonicalized required
// skills and are sorted alphabetically. Score is |matched| / |required|
// rounded to two decimal places so results reproduce across platforms.
func (s *Scorer) Score(skills *types.SkillSet, role types.CandidateRole) (*types.ScoredRole, error) {
	if err := role.Validate(); err != nil {
		reason := "missing title"
		if role.Title != "" {
			reason = "no required skills"
		}
		return nil, &InvalidRoleError{Title: role.Title, Reason: reason}
	}

	required := make(map[string]bool)
	for _, raw := range role.RequiredSkills {
		canonical := s.norm.Canonicalize(raw)
		if canonical != "" {
			required[canonical] = true
		}
	}
	if len(required) == 0 {
		return nil, &InvalidRoleError{Title: role.Title, Reason: "no usable required skills"}
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for canonical := range required {
		if skills.Has(canonical) {
			matched = append(matched, canonical)
		} else {
			missing = append(missing, canonical)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return &types.ScoredRole{
		Title:     role.Title,
		Score:     round2(float64(len(matched)) / float64(len(required))),
		Matched:   matched,
		Missing:   missing,
		Rationale: role.Rationale,
	}, nil
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
