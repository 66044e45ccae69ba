package types

// ScoredRole is a CandidateRole after scoring against a SkillSet.
// Matched and Missing partition the role's required skills: their union is
// the deduplicated required set and their intersection is empty. Score is
// |matched| / |required| rounded to two decimal places.
type ScoredRole struct {
	Title       string            `json:"title"`
	Score       float64           `json:"score"`
	Matched     []string          `json:"matched"`
	Missing     []string          `json:"missing"`
	Rationale   string            `json:"rationale,omitempty"`
	SearchLinks map[string]string `json:"search_links,omitempty"`
}

// RoleReport records a candidate role that was excluded from scoring and why.
// Per-role failures are absorbed into reports rather than aborting the batch.
type RoleReport struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}
