// Package normalize canonicalizes raw skill strings into deduplicated SkillSets.
package normalize

import (
	"sort"
	"strings"

	"github.com/jonathan/skillpath/internal/types"
)

// AliasTable maps skill name variants to their canonical form. Keys are
// compared after folding (lower-case, collapsed whitespace), so entries
// should be written folded. The table is collaborator-supplied
// configuration and swappable without code changes.
type AliasTable map[string]string

// DefaultAliasTable returns the built-in alias table used when the hosting
// application supplies none.
func DefaultAliasTable() AliasTable {
	return AliasTable{
		"golang":     "go",
		"go lang":    "go",
		"js":         "javascript",
		"ts":         "typescript",
		"k8s":        "kubernetes",
		"node.js":    "nodejs",
		"node js":    "nodejs",
		"react.js":   "react",
		"reactjs":    "react",
		"vue.js":     "vue",
		"vuejs":      "vue",
		"postgresql": "postgres",
		"ms excel":   "excel",
	}
}

// Normalizer canonicalizes skill strings against a fixed alias table.
// A Normalizer is pure: the same input always yields the same output, and
// input order never affects the resulting set content.
type Normalizer struct {
	aliases AliasTable
}

// NewNormalizer creates a Normalizer backed by the given alias table.
// A nil table falls back to the built-in defaults.
func NewNormalizer(aliases AliasTable) *Normalizer {
	if aliases == nil {
		aliases = DefaultAliasTable()
	}
	return &Normalizer{aliases: aliases}
}

// Canonicalize returns the canonical name for a raw skill string, or the
// empty string when the input is blank. Folding lower-cases the input and
// collapses internal whitespace; the alias table is consulted on the folded
// form and again with punctuation stripped, so "Node.js", "nodejs" and
// "Node JS" all resolve to one token.
func (n *Normalizer) Canonicalize(raw string) string {
	folded := fold(raw)
	if folded == "" {
		return ""
	}
	if canonical, ok := n.aliases[folded]; ok {
		return canonical
	}
	stripped := stripPunctuation(folded)
	if canonical, ok := n.aliases[stripped]; ok {
		return canonical
	}
	if stripped != folded {
		// No alias entry either way: the punctuation-stripped form is the
		// canonical identity so spelling variants still collapse.
		return stripped
	}
	return folded
}

// Normalize canonicalizes raw skill strings into a SkillSet. Blank entries
// are dropped silently; entries normalizing to the same canonical name are
// merged, keeping every distinct surface form for display and debugging.
func (n *Normalizer) Normalize(raw []string) *types.SkillSet {
	merged := make(map[string]map[string]bool)

	for _, entry := range raw {
		canonical := n.Canonicalize(entry)
		if canonical == "" {
			continue
		}
		surface := strings.TrimSpace(entry)
		if merged[canonical] == nil {
			merged[canonical] = make(map[string]bool)
		}
		merged[canonical][surface] = true
	}

	skills := make([]types.SkillToken, 0, len(merged))
	for canonical, surfaces := range merged {
		token := types.SkillToken{Canonical: canonical}
		for surface := range surfaces {
			token.Surfaces = append(token.Surfaces, surface)
		}
		sort.Strings(token.Surfaces)
		skills = append(skills, token)
	}

	// Sorted storage keeps serialization independent of input order.
	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Canonical < skills[j].Canonical
	})

	return &types.SkillSet{Skills: skills}
}

// fold lower-cases a string and collapses runs of whitespace to single spaces.
func fold(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// stripPunctuation removes separator characters so spelling variants like
// "node.js" / "node js" / "node-js" share one form.
func stripPunctuation(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '.', '-', '_', '/':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
