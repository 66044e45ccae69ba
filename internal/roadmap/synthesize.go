// Package roadmap turns a prioritized skill-gap list into an ordered
// sequence of learning steps.
package roadmap

import (
	"fmt"
	"strings"

	"github.com/jonathan/skillpath/internal/types"
)

// EffortTable maps canonical skill names to effort tiers. It is
// collaborator-supplied metadata; skills absent from the table default to
// moderate so a tier is never left unset.
type EffortTable map[string]types.EffortTier

// PrerequisiteTable maps a canonical skill to the canonical skill that
// should be learned first. Collaborator-supplied configuration; must be
// acyclic.
type PrerequisiteTable map[string]string

// Options configures roadmap synthesis.
type Options struct {
	// MaxSteps caps the number of emitted steps. Zero or negative means
	// no cap.
	MaxSteps int
	Efforts  EffortTable
	Prereqs  PrerequisiteTable
}

// CyclicPrerequisiteError reports a cycle in the prerequisite table. This
// is a configuration defect surfaced to the operator, not a request error.
type CyclicPrerequisiteError struct {
	Cycle []string
}

func (e *CyclicPrerequisiteError) Error() string {
	return fmt.Sprintf("cyclic prerequisite chain: %s", strings.Join(e.Cycle, " -> "))
}

// Validate checks the table for cycles.
func (t PrerequisiteTable) Validate() error {
	for start := range t {
		seen := map[string]bool{start: true}
		path := []string{start}
		for current := start; ; {
			next, ok := t[current]
			if !ok {
				break
			}
			path = append(path, next)
			if seen[next] {
				return &CyclicPrerequisiteError{Cycle: path}
			}
			seen[next] = true
			current = next
		}
	}
	return nil
}

// Synthesize consumes gap entries in priority order and emits at most
// MaxSteps roadmap steps. When gaps exceed the cap, the lowest-priority
// entries are dropped and reported through the returned count — truncation
// is informational, never an error. Steps whose skill has a selected
// prerequisite are reordered so the prerequisite comes first and carry a
// reference to its position; a cyclic prerequisite table fails with
// CyclicPrerequisiteError instead of emitting an inconsistent order.
func Synthesize(gapList []types.GapEntry, opts Options) ([]types.RoadmapStep, int, error) {
	if err := opts.Prereqs.Validate(); err != nil {
		return nil, 0, err
	}

	selected := gapList
	dropped := 0
	if opts.MaxSteps > 0 && len(gapList) > opts.MaxSteps {
		selected = gapList[:opts.MaxSteps]
		dropped = len(gapList) - opts.MaxSteps
	}

	// Gap entries are already deduplicated by skill, so steps never
	// duplicate; keep an index for prerequisite lookups.
	index := make(map[string]int, len(selected))
	for i, gap := range selected {
		index[gap.Skill] = i
	}

	order := prerequisiteOrder(selected, opts.Prereqs, index)

	position := make(map[string]int, len(order))
	for i, gapIdx := range order {
		position[selected[gapIdx].Skill] = i + 1
	}

	steps := make([]types.RoadmapStep, 0, len(order))
	for i, gapIdx := range order {
		skill := selected[gapIdx].Skill
		step := types.RoadmapStep{
			Position: i + 1,
			Skill:    skill,
			Effort:   effortFor(skill, opts.Efforts),
			Actions:  actionsFor(skill),
		}
		if prereq, ok := opts.Prereqs[skill]; ok {
			if pos, present := position[prereq]; present {
				step.Prerequisite = pos
			}
		}
		steps = append(steps, step)
	}

	return steps, dropped, nil
}

// prerequisiteOrder returns indices into selected, reordered so that a
// selected prerequisite always precedes its dependent while otherwise
// preserving priority order. Kahn's algorithm, always taking the
// highest-priority ready entry, keeps the result deterministic.
func prerequisiteOrder(selected []types.GapEntry, prereqs PrerequisiteTable, index map[string]int) []int {
	n := len(selected)
	indegree := make([]int, n)
	dependents := make([][]int, n)

	for i, gap := range selected {
		prereq, ok := prereqs[gap.Skill]
		if !ok {
			continue
		}
		p, present := index[prereq]
		if !present || p == i {
			continue
		}
		indegree[i]++
		dependents[p] = append(dependents[p], i)
	}

	order := make([]int, 0, n)
	emitted := make([]bool, n)
	for len(order) < n {
		next := -1
		for i := 0; i < n; i++ {
			if !emitted[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		// The table was validated acyclic, so a ready entry always exists.
		order = append(order, next)
		emitted[next] = true
		for _, d := range dependents[next] {
			indegree[d]--
		}
	}
	return order
}

func effortFor(skill string, efforts EffortTable) types.EffortTier {
	if tier, ok := efforts[skill]; ok {
		return tier
	}
	return types.EffortModerate
}

// actionsFor produces the concrete learning actions attached to a step.
func actionsFor(skill string) []string {
	return []string{
		fmt.Sprintf("Learn or improve your skill in %s (online courses / tutorials)", skill),
		fmt.Sprintf("Build a small project using %s to gain practical experience", skill),
	}
}
