// Package suggest wraps the model collaborator calls that produce the
// pipeline's external inputs: raw resume skills and role suggestions.
// Responses are returned as raw JSON so the pipeline's boundary validation
// stays exercised — nothing here is trusted.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/skillpath/internal/llm"
	"github.com/jonathan/skillpath/internal/types"
)

const parseSkillsPrompt = `You are a professional resume parser. Extract the candidate's skills from the resume text below.

Return JSON ONLY, with this exact structure:
{"skills": ["skill one", "skill two"]}

Resume Text:
%s
`

const suggestRolesPrompt = `Based on these candidate skills:
%s

Recommend %d job roles as a JSON list. Each item must include:
- title (string)
- required_skills (list of strings the role typically requires)
- rationale (string, one sentence on why this role fits)

Return JSON only.`

// ParseResumeSkills asks the model to extract raw skill strings from
// resume text. The returned strings are unnormalized extraction output.
func ParseResumeSkills(ctx context.Context, client llm.Client, resumeText string) ([]string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	raw, err := client.GenerateJSON(ctx, fmt.Sprintf(parseSkillsPrompt, resumeText))
	if err != nil {
		return nil, fmt.Errorf("skill extraction failed: %w", err)
	}

	var parsed struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("skill extraction returned invalid JSON: %w", err)
	}
	return parsed.Skills, nil
}

// SuggestRoles asks the model for role suggestions matching a skill set.
// The response is returned verbatim as raw JSON: the pipeline's payload
// decoder owns validation and coercion.
func SuggestRoles(ctx context.Context, client llm.Client, skills *types.SkillSet, count int) (json.RawMessage, error) {
	if skills == nil || skills.Len() == 0 {
		return nil, fmt.Errorf("skill set is empty")
	}
	if count <= 0 {
		return nil, fmt.Errorf("role count must be positive")
	}

	prompt := fmt.Sprintf(suggestRolesPrompt, strings.Join(skills.Canonicals(), ", "), count)
	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("role suggestion failed: %w", err)
	}
	return json.RawMessage(raw), nil
}
