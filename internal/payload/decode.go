// Package payload decodes untrusted role-suggestion payloads into typed
// candidate roles, tolerating the shape drift the model collaborator is
// known to produce.
package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/skillpath/internal/types"
)

// FieldError is a single structural problem at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports a payload whose overall shape is unusable. It is
// raised before any pipeline processing; per-role problems are reported,
// not raised.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("payload validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// DecodeRoleSuggestions decodes a raw model-suggestion payload into
// candidate roles. Accepted envelopes: a bare JSON array, an object with a
// "matches" array, or a single role object (wrapped into a one-element
// list). Items that are not objects, or that fail structural validation,
// become RoleReports instead of aborting the batch. A payload that is not
// JSON at all, or whose envelope is the wrong shape, is a ValidationError.
func DecodeRoleSuggestions(raw []byte) ([]types.CandidateRole, []types.RoleReport, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, nil, newValidationError("(root)", "empty payload")
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, nil, newValidationError("(root)", "payload is not valid JSON")
	}

	items, err := unwrapEnvelope(decoded)
	if err != nil {
		return nil, nil, err
	}

	roles := make([]types.CandidateRole, 0, len(items))
	reports := make([]types.RoleReport, 0)

	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			reports = append(reports, types.RoleReport{
				Title:  fmt.Sprintf("(item %d)", i+1),
				Reason: "suggestion is not an object",
			})
			continue
		}

		role := coerceRole(obj)
		if err := role.Validate(); err != nil {
			title := role.Title
			if title == "" {
				title = fmt.Sprintf("(item %d)", i+1)
			}
			reason := "missing title"
			if role.Title != "" {
				reason = "no required skills"
			}
			reports = append(reports, types.RoleReport{Title: title, Reason: reason})
			continue
		}
		roles = append(roles, role)
	}

	return roles, reports, nil
}

// unwrapEnvelope extracts the suggestion list from the supported envelope
// shapes.
func unwrapEnvelope(decoded any) ([]any, error) {
	switch v := decoded.(type) {
	case []any:
		return v, nil
	case map[string]any:
		matches, ok := v["matches"]
		if !ok {
			// A single role object: wrap it.
			return []any{v}, nil
		}
		list, ok := matches.([]any)
		if !ok {
			return nil, newValidationError("matches", "expected an array of suggestions")
		}
		return list, nil
	default:
		return nil, newValidationError("(root)", "payload must be an object or array")
	}
}

// coerceRole maps a loose suggestion object onto a CandidateRole, applying
// the historical field aliases ("role" for title, "explanation" for
// rationale) and splitting comma-separated skill strings.
func coerceRole(obj map[string]any) types.CandidateRole {
	role := types.CandidateRole{
		Title:     stringField(obj, "title", "role"),
		Rationale: stringField(obj, "rationale", "explanation"),
	}

	skills, ok := obj["required_skills"]
	if !ok {
		skills = obj["skills"]
	}
	role.RequiredSkills = coerceSkillList(skills)

	return role
}

func stringField(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// coerceSkillList accepts either a JSON array of strings (non-string
// entries dropped) or a single comma-separated string.
func coerceSkillList(v any) []string {
	switch skills := v.(type) {
	case []any:
		out := make([]string, 0, len(skills))
		for _, s := range skills {
			if str, ok := s.(string); ok && strings.TrimSpace(str) != "" {
				out = append(out, strings.TrimSpace(str))
			}
		}
		return out
	case string:
		parts := strings.Split(skills, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}
