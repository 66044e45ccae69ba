// Package types provides type definitions for structured data used throughout the skillpath pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillToken represents a single normalized skill together with the raw
// surface forms it was extracted as.
type SkillToken struct {
	Canonical string   `json:"canonical"`
	Surfaces  []string `json:"surfaces,omitempty"`
}

// SkillSet is a collection of SkillTokens deduplicated by canonical name.
// Tokens are stored sorted by canonical name so serialization is
// deterministic. A SkillSet is request-scoped and must not be mutated
// after construction.
type SkillSet struct {
	Skills []SkillToken `json:"skills"`
}

// Has reports whether the set contains a skill with the given canonical name.
func (s *SkillSet) Has(canonical string) bool {
	for _, token := range s.Skills {
		if token.Canonical == canonical {
			return true
		}
	}
	return false
}

// Len returns the number of distinct skills in the set.
func (s *SkillSet) Len() int {
	return len(s.Skills)
}

// Canonicals returns the canonical names of all skills in the set, in
// stored (sorted) order.
func (s *SkillSet) Canonicals() []string {
	names := make([]string, len(s.Skills))
	for i, token := range s.Skills {
		names[i] = token.Canonical
	}
	return names
}
