package types

// GapEntry is a skill missing from the candidate's SkillSet, prioritized by
// how many candidate roles it blocks. Ranks are a total order: blocks
// descending, then canonical skill name ascending.
type GapEntry struct {
	Skill        string   `json:"skill"`
	Blocks       int      `json:"blocks"`
	BlockedRoles []string `json:"blocked_roles"`
	Rank         int      `json:"rank"`
}
