// Package gaps aggregates missing skills across scored roles into a
// prioritized skill-gap list.
package gaps

import (
	"sort"

	"github.com/jonathan/skillpath/internal/types"
)

// Rank aggregates the missing skills of all scored roles into GapEntries
// ordered by priority: skills blocking more roles rank first, with
// alphabetical canonical name as the tie-break. The order is total, so
// identical input in any processing order yields identical output.
//
// Skills present in the possessed SkillSet never become gaps, even when an
// inconsistent upstream payload lists them as missing — the SkillSet is
// ground truth over the model's claim.
func Rank(scored []types.ScoredRole, skills *types.SkillSet) []types.GapEntry {
	blockedBy := make(map[string]map[string]bool)

	for _, role := range scored {
		for _, skill := range role.Missing {
			if skills.Has(skill) {
				continue
			}
			if blockedBy[skill] == nil {
				blockedBy[skill] = make(map[string]bool)
			}
			blockedBy[skill][role.Title] = true
		}
	}

	entries := make([]types.GapEntry, 0, len(blockedBy))
	for skill, roles := range blockedBy {
		blocked := make([]string, 0, len(roles))
		for title := range roles {
			blocked = append(blocked, title)
		}
		sort.Strings(blocked)
		entries = append(entries, types.GapEntry{
			Skill:        skill,
			Blocks:       len(blocked),
			BlockedRoles: blocked,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Blocks != entries[j].Blocks {
			return entries[i].Blocks > entries[j].Blocks
		}
		return entries[i].Skill < entries[j].Skill
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
