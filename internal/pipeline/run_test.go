package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillpath/internal/payload"
	"github.com/jonathan/skillpath/internal/roadmap"
	"github.com/jonathan/skillpath/internal/types"
)

func newTestOrchestrator(t *testing.T, opts roadmap.Options) *Orchestrator {
	t.Helper()
	o, err := New(nil, opts)
	require.NoError(t, err)
	return o
}

func suggestionsJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestRun_FullPipeline(t *testing.T) {
	o := newTestOrchestrator(t, roadmap.Options{MaxSteps: 10})

	in := Input{
		RawSkills: []string{"Python", "python ", "SQL"},
		RoleSuggestions: suggestionsJSON(t, []map[string]any{
			{"title": "Data Analyst", "required_skills": []string{"python", "sql", "excel"}},
			{"title": "BI Analyst", "required_skills": []string{"sql", "excel", "tableau"}},
		}),
	}

	result, err := o.Run(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.RunID)
	assert.False(t, result.CreatedAt.IsZero())

	assert.Equal(t, []string{"python", "sql"}, result.Skills.Canonicals())

	require.Len(t, result.Roles, 2)
	assert.Equal(t, "Data Analyst", result.Roles[0].Title)
	assert.Equal(t, 0.67, result.Roles[0].Score)

	// excel blocks both roles, tableau one.
	require.Len(t, result.Gaps, 2)
	assert.Equal(t, types.GapEntry{Skill: "excel", Blocks: 2, BlockedRoles: []string{"BI Analyst", "Data Analyst"}, Rank: 1}, result.Gaps[0])
	assert.Equal(t, "tableau", result.Gaps[1].Skill)

	require.Len(t, result.Roadmap, 2)
	assert.Equal(t, "excel", result.Roadmap[0].Skill)
	assert.Equal(t, "tableau", result.Roadmap[1].Skill)

	assert.Empty(t, result.Report.InvalidRoles)
	assert.Zero(t, result.Report.DroppedGaps)
}

func TestRun_TruncationReportedNotFatal(t *testing.T) {
	o := newTestOrchestrator(t, roadmap.Options{MaxSteps: 1})

	in := Input{
		RawSkills: []string{"python"},
		RoleSuggestions: suggestionsJSON(t, []map[string]any{
			{"title": "Role A", "required_skills": []string{"python", "excel", "tableau", "docker"}},
		}),
	}

	result, err := o.Run(context.Background(), in)
	require.NoError(t, err)

	assert.Len(t, result.Roadmap, 1)
	assert.Equal(t, 2, result.Report.DroppedGaps)
}

func TestRun_EmptySkillListRejectedAtReceived(t *testing.T) {
	o := newTestOrchestrator(t, roadmap.Options{MaxSteps: 5})

	_, err := o.Run(context.Background(), Input{
		RoleSuggestions: json.RawMessage(`[]`),
	})

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageReceived, stageErr.Stage)

	var validationErr *payload.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRun_MalformedSuggestionsRejectedAtReceived(t *testing.T) {
	o := newTestOrchestrator(t, roadmap.Options{MaxSteps: 5})

	_, err := o.Run(context.Background(), Input{
		RawSkills:       []string{"python"},
		RoleSuggestions: json.RawMessage("not json at all"),
	})

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageReceived, stageErr.Stage)
}

func TestRun_AllBlankSkillsRejectedAtNormalized(t *testing.T) {
	o := newTestOrchestrator(t, roadmap.Options{MaxSteps: 5})

	_, err := o.Run(context.Background(), Input{
		RawSkills:       []string{"  ", ""},
		RoleSuggestions: json.RawMessage(`[{"title": "Role", "required_skills": ["go"]}]`),
	})

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageNormalized, stageErr.Stage)
}

func TestRun_SingleBadRoleDoesNotAbortBatch(t *testing.T) {
	o := newTestOrchestrator(t, roadmap.Options{MaxSteps: 5})

	in := Input{
		RawSkills: []string{"python"},
		RoleSuggestions: suggestionsJSON(t, []map[string]any{
			{"title": "Broken Role"},
			{"title": "Python Developer", "required_skills": []string{"python"}},
		}),
	}

	result, err := o.Run(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, result.Roles, 1)
	assert.Equal(t, "Python Developer", result.Roles[0].Title)
	require.Len(t, result.Report.InvalidRoles, 1)
	assert.Equal(t, "Broken Role", result.Report.InvalidRoles[0].Title)
}

func TestRun_NoViableRolesAborts(t *testing.T) {
	o := newTestOrchestrator(t, roadmap.Options{MaxSteps: 5})

	in := Input{
		RawSkills: []string{"python"},
		RoleSuggestions: suggestionsJSON(t, []map[string]any{
			{"title": "Broken Role"},
			{"required_skills": []string{"go"}},
		}),
	}

	_, err := o.Run(context.Background(), in)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageScored, stageErr.Stage)

	var noViable *NoViableRolesError
	require.ErrorAs(t, err, &noViable)
	assert.Equal(t, 2, noViable.Rejected)
}

func TestNew_CyclicPrerequisiteTableRejected(t *testing.T) {
	_, err := New(nil, roadmap.Options{
		Prereqs: roadmap.PrerequisiteTable{"a": "b", "b": "a"},
	})

	var cyclic *roadmap.CyclicPrerequisiteError
	assert.ErrorAs(t, err, &cyclic)
}

func TestRun_ResultSerializable(t *testing.T) {
	o := newTestOrchestrator(t, roadmap.Options{MaxSteps: 5})

	result, err := o.Run(context.Background(), Input{
		RawSkills:       []string{"python"},
		RoleSuggestions: json.RawMessage(`[{"title": "Python Developer", "required_skills": ["python"]}]`),
	})
	require.NoError(t, err)

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var round types.PipelineResult
	require.NoError(t, json.Unmarshal(raw, &round))
	assert.Equal(t, result.RunID, round.RunID)
	assert.Equal(t, result.Roles, round.Roles)
}
