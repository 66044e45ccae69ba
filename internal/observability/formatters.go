// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillpath/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSkillSet outputs a human-readable summary of the normalized skill set.
func (p *Printer) PrintSkillSet(set *types.SkillSet) {
	if set == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Distinct skills: %d\n\n", set.Len()))

	count := min(set.Len(), maxItemsToShow)
	for i := 0; i < count; i++ {
		token := set.Skills[i]
		sb.WriteString(fmt.Sprintf("  • %s", token.Canonical))
		if len(token.Surfaces) > 1 {
			sb.WriteString(fmt.Sprintf(" (from %s)", strings.Join(token.Surfaces, ", ")))
		}
		sb.WriteString("\n")
	}
	if set.Len() > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", set.Len()-maxItemsToShow))
	}

	p.printBox("Skill Set", sb.String())
}

// PrintScoredRoles outputs the scored roles in canonical order.
func (p *Printer) PrintScoredRoles(roles []types.ScoredRole) {
	var sb strings.Builder

	for _, role := range roles {
		sb.WriteString(fmt.Sprintf("%.2f  %s\n", role.Score, role.Title))
		if len(role.Missing) > 0 {
			sb.WriteString(fmt.Sprintf("      missing: %s\n", strings.Join(role.Missing, ", ")))
		}
	}

	p.printBox("Scored Roles", sb.String())
}

// PrintGapEntries outputs the prioritized skill gaps.
func (p *Printer) PrintGapEntries(entries []types.GapEntry) {
	var sb strings.Builder

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("%d. %s (blocks %d roles)\n", entry.Rank, entry.Skill, entry.Blocks))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(entries)-maxItemsToShow))
	}

	p.printBox("Skill Gaps", sb.String())
}

// PrintRoadmap outputs the ordered roadmap steps.
func (p *Printer) PrintRoadmap(steps []types.RoadmapStep, droppedGaps int) {
	var sb strings.Builder

	for _, step := range steps {
		sb.WriteString(fmt.Sprintf("%d. %s [%s]", step.Position, step.Skill, step.Effort))
		if step.Prerequisite > 0 {
			sb.WriteString(fmt.Sprintf(" (after step %d)", step.Prerequisite))
		}
		sb.WriteString("\n")
	}
	if droppedGaps > 0 {
		sb.WriteString(fmt.Sprintf("\n%d lower-priority gaps dropped\n", droppedGaps))
	}

	p.printBox("Learning Roadmap", sb.String())
}

// PrintReport outputs excluded roles, if any.
func (p *Printer) PrintReport(report types.RunReport) {
	if len(report.InvalidRoles) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range report.InvalidRoles {
		sb.WriteString(fmt.Sprintf("  • %s: %s\n", r.Title, r.Reason))
	}

	p.printBox("Excluded Roles", sb.String())
}
