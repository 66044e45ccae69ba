package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/skillpath/internal/normalize"
	"github.com/jonathan/skillpath/internal/roadmap"
	"github.com/jonathan/skillpath/internal/types"
)

// JSON Schemas for the collaborator-supplied data tables. Tables are
// operator configuration, so a shape violation is a hard error, unlike the
// tolerant handling of model payloads.
const (
	aliasTableSchema = `{
		"type": "object",
		"additionalProperties": {"type": "string", "minLength": 1}
	}`

	effortTableSchema = `{
		"type": "object",
		"additionalProperties": {
			"type": "string",
			"enum": ["light", "moderate", "intensive"]
		}
	}`

	prereqTableSchema = `{
		"type": "object",
		"additionalProperties": {"type": "string", "minLength": 1}
	}`
)

// TableError reports a collaborator table that failed schema validation.
type TableError struct {
	Path     string
	Problems []string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("invalid table %s: %s", e.Path, strings.Join(e.Problems, "; "))
}

// LoadAliasTable reads and validates a skill alias table. Keys and values
// are folded to lower case so lookups match the normalizer's folding. An
// empty path yields nil, which selects the built-in default table.
func LoadAliasTable(path string) (normalize.AliasTable, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := loadValidated(path, aliasTableSchema)
	if err != nil {
		return nil, err
	}

	table := make(normalize.AliasTable, len(raw))
	for variant, canonical := range raw {
		table[foldKey(variant)] = foldKey(canonical)
	}
	return table, nil
}

// LoadEffortTable reads and validates a skill effort table keyed by
// canonical skill name.
func LoadEffortTable(path string) (roadmap.EffortTable, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := loadValidated(path, effortTableSchema)
	if err != nil {
		return nil, err
	}

	table := make(roadmap.EffortTable, len(raw))
	for skill, tierName := range raw {
		tier, ok := types.ParseEffortTier(tierName)
		if !ok {
			// Unreachable after schema validation, but kept as a guard.
			return nil, &TableError{Path: path, Problems: []string{fmt.Sprintf("%s: unknown effort tier %q", skill, tierName)}}
		}
		table[foldKey(skill)] = tier
	}
	return table, nil
}

// LoadPrerequisiteTable reads and validates a skill prerequisite table,
// including the acyclicity check — a cyclic table is a configuration
// defect and must fail at load time.
func LoadPrerequisiteTable(path string) (roadmap.PrerequisiteTable, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := loadValidated(path, prereqTableSchema)
	if err != nil {
		return nil, err
	}

	table := make(roadmap.PrerequisiteTable, len(raw))
	for skill, prereq := range raw {
		table[foldKey(skill)] = foldKey(prereq)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("prerequisite table %s: %w", path, err)
	}
	return table, nil
}

// loadValidated reads a JSON file and validates it against the given schema
// before unmarshaling.
func loadValidated(path, schema string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &TableError{Path: path, Problems: []string{fmt.Sprintf("not valid JSON: %v", err)}}
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			problems = append(problems, fmt.Sprintf("%s: %s", field, desc.Description()))
		}
		return nil, &TableError{Path: path, Problems: problems}
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse table %s: %w", path, err)
	}
	return table, nil
}

func foldKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
