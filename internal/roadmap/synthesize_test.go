package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillpath/internal/types"
)

func gapList(skills ...string) []types.GapEntry {
	entries := make([]types.GapEntry, len(skills))
	for i, s := range skills {
		entries[i] = types.GapEntry{Skill: s, Blocks: len(skills) - i, Rank: i + 1}
	}
	return entries
}

func TestSynthesize_PriorityOrderPreserved(t *testing.T) {
	steps, dropped, err := Synthesize(gapList("excel", "tableau", "docker"), Options{MaxSteps: 10})
	require.NoError(t, err)

	assert.Zero(t, dropped)
	require.Len(t, steps, 3)
	assert.Equal(t, "excel", steps[0].Skill)
	assert.Equal(t, "tableau", steps[1].Skill)
	assert.Equal(t, "docker", steps[2].Skill)
	for i, step := range steps {
		assert.Equal(t, i+1, step.Position)
	}
}

func TestSynthesize_TruncatesAtMaxSteps(t *testing.T) {
	steps, dropped, err := Synthesize(gapList("excel", "tableau", "docker"), Options{MaxSteps: 1})
	require.NoError(t, err)

	require.Len(t, steps, 1)
	assert.Equal(t, "excel", steps[0].Skill)
	assert.Equal(t, 2, dropped)
}

func TestSynthesize_NoTruncationNoticeWhenUnderCap(t *testing.T) {
	steps, dropped, err := Synthesize(gapList("excel"), Options{MaxSteps: 3})
	require.NoError(t, err)

	assert.Len(t, steps, 1)
	assert.Zero(t, dropped)
}

func TestSynthesize_EffortDefaultsToModerate(t *testing.T) {
	opts := Options{
		MaxSteps: 5,
		Efforts:  EffortTable{"kubernetes": types.EffortIntensive},
	}

	steps, _, err := Synthesize(gapList("kubernetes", "excel"), opts)
	require.NoError(t, err)

	require.Len(t, steps, 2)
	assert.Equal(t, types.EffortIntensive, steps[0].Effort)
	assert.Equal(t, types.EffortModerate, steps[1].Effort)
}

func TestSynthesize_PrerequisitePrecedesDependent(t *testing.T) {
	opts := Options{
		MaxSteps: 5,
		Prereqs:  PrerequisiteTable{"kubernetes": "docker"},
	}

	// kubernetes outranks docker, but docker must be learned first.
	steps, _, err := Synthesize(gapList("kubernetes", "excel", "docker"), opts)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, "excel", steps[0].Skill)
	assert.Equal(t, "docker", steps[1].Skill)
	assert.Equal(t, "kubernetes", steps[2].Skill)
	assert.Equal(t, 2, steps[2].Prerequisite)
	assert.Zero(t, steps[1].Prerequisite)
}

func TestSynthesize_PrerequisiteOutsideSelectionNotLinked(t *testing.T) {
	opts := Options{
		MaxSteps: 5,
		Prereqs:  PrerequisiteTable{"kubernetes": "docker"},
	}

	steps, _, err := Synthesize(gapList("kubernetes", "excel"), opts)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "kubernetes", steps[0].Skill)
	assert.Zero(t, steps[0].Prerequisite)
}

func TestSynthesize_CyclicTableFails(t *testing.T) {
	opts := Options{
		MaxSteps: 5,
		Prereqs: PrerequisiteTable{
			"docker":     "kubernetes",
			"kubernetes": "docker",
		},
	}

	_, _, err := Synthesize(gapList("docker"), opts)

	var cyclic *CyclicPrerequisiteError
	require.ErrorAs(t, err, &cyclic)
	assert.NotEmpty(t, cyclic.Cycle)
}

func TestSynthesize_StepsCarryActions(t *testing.T) {
	steps, _, err := Synthesize(gapList("excel"), Options{MaxSteps: 1})
	require.NoError(t, err)

	require.Len(t, steps, 1)
	require.Len(t, steps[0].Actions, 2)
	assert.Contains(t, steps[0].Actions[0], "excel")
}

func TestSynthesize_NoCapWhenMaxStepsZero(t *testing.T) {
	steps, dropped, err := Synthesize(gapList("a", "b", "c", "d"), Options{})
	require.NoError(t, err)
	assert.Len(t, steps, 4)
	assert.Zero(t, dropped)
}

func TestPrerequisiteTable_ValidateChains(t *testing.T) {
	valid := PrerequisiteTable{
		"kubernetes": "docker",
		"docker":     "linux",
	}
	assert.NoError(t, valid.Validate())

	selfLoop := PrerequisiteTable{"go": "go"}
	var cyclic *CyclicPrerequisiteError
	assert.ErrorAs(t, selfLoop.Validate(), &cyclic)
}
