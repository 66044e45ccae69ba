package types

// EffortTier is a coarse categorical estimate of the learning effort for a
// roadmap step.
type EffortTier string

// Effort tiers, from lightest to heaviest.
const (
	EffortLight     EffortTier = "light"
	EffortModerate  EffortTier = "moderate"
	EffortIntensive EffortTier = "intensive"
)

// ParseEffortTier parses a tier string, reporting whether it is a known tier.
func ParseEffortTier(s string) (EffortTier, bool) {
	switch EffortTier(s) {
	case EffortLight, EffortModerate, EffortIntensive:
		return EffortTier(s), true
	default:
		return "", false
	}
}

// RoadmapStep is one ordered step of a learning roadmap. Position starts at
// 1. Prerequisite holds the Position of the step that must come first, or 0
// when the step has no prerequisite in the roadmap.
type RoadmapStep struct {
	Position     int        `json:"position"`
	Skill        string     `json:"skill"`
	Effort       EffortTier `json:"effort"`
	Prerequisite int        `json:"prerequisite,omitempty"`
	Actions      []string   `json:"actions,omitempty"`
}
