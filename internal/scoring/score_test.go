package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillpath/internal/normalize"
	"github.com/jonathan/skillpath/internal/types"
)

func newTestScorer() (*Scorer, *types.SkillSet) {
	norm := normalize.NewNormalizer(nil)
	return NewScorer(norm), norm.Normalize([]string{"Python", "python ", "SQL"})
}

func TestScore_DataAnalystScenario(t *testing.T) {
	scorer, skills := newTestScorer()

	role := types.CandidateRole{
		Title:          "Data Analyst",
		RequiredSkills: []string{"python", "sql", "excel"},
	}

	scored, err := scorer.Score(skills, role)
	require.NoError(t, err)

	assert.Equal(t, 0.67, scored.Score)
	assert.Equal(t, []string{"python", "sql"}, scored.Matched)
	assert.Equal(t, []string{"excel"}, scored.Missing)
}

func TestScore_MatchedAndMissingPartitionRequired(t *testing.T) {
	scorer, skills := newTestScorer()

	role := types.CandidateRole{
		Title:          "Backend Engineer",
		RequiredSkills: []string{"Go", "SQL", "Docker", "Kubernetes"},
	}

	scored, err := scorer.Score(skills, role)
	require.NoError(t, err)

	union := append(append([]string{}, scored.Matched...), scored.Missing...)
	assert.ElementsMatch(t, []string{"go", "sql", "docker", "kubernetes"}, union)
	for _, m := range scored.Matched {
		assert.NotContains(t, scored.Missing, m)
	}
}

func TestScore_RequiredSkillsDeduplicatedBeforeScoring(t *testing.T) {
	scorer, skills := newTestScorer()

	role := types.CandidateRole{
		Title:          "Data Engineer",
		RequiredSkills: []string{"python", "Python", "excel"},
	}

	scored, err := scorer.Score(skills, role)
	require.NoError(t, err)

	// python counted once: 1 matched of 2 required.
	assert.Equal(t, 0.5, scored.Score)
}

func TestScore_ExactCanonicalMatchOnly(t *testing.T) {
	scorer, skills := newTestScorer()

	// "Node.js" and "nodejs" canonicalize to the same token, but "postgres"
	// never matches "sql".
	role := types.CandidateRole{
		Title:          "Platform Engineer",
		RequiredSkills: []string{"postgres"},
	}

	scored, err := scorer.Score(skills, role)
	require.NoError(t, err)
	assert.Equal(t, 0.0, scored.Score)
	assert.Equal(t, []string{"postgres"}, scored.Missing)
}

func TestScore_EmptyRequiredSkillsIsInvalid(t *testing.T) {
	scorer, skills := newTestScorer()

	_, err := scorer.Score(skills, types.CandidateRole{Title: "Mystery Role"})

	var invalid *InvalidRoleError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Mystery Role", invalid.Title)
	assert.Equal(t, "no required skills", invalid.Reason)
}

func TestScore_MissingTitleIsInvalid(t *testing.T) {
	scorer, skills := newTestScorer()

	_, err := scorer.Score(skills, types.CandidateRole{RequiredSkills: []string{"python"}})

	var invalid *InvalidRoleError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "missing title", invalid.Reason)
}

func TestScore_BlankRequiredSkillsIsInvalid(t *testing.T) {
	scorer, skills := newTestScorer()

	_, err := scorer.Score(skills, types.CandidateRole{
		Title:          "Ghost Role",
		RequiredSkills: []string{"  ", ""},
	})

	var invalid *InvalidRoleError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "no usable required skills", invalid.Reason)
}
