// Package render produces the downloadable roadmap PDF. Presentation
// collaborator: it consumes a finished PipelineResult and owns no pipeline
// logic.
package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/jonathan/skillpath/internal/types"
)

// RoadmapPDF writes a career roadmap PDF for a pipeline result to path.
// targetRole names the role the roadmap is oriented toward (normally the
// top-scored role); pass an empty string for a generic career path title.
func RoadmapPDF(result *types.PipelineResult, targetRole, path string) error {
	if result == nil {
		return fmt.Errorf("pipeline result is nil")
	}
	if targetRole == "" {
		targetRole = "Career Path"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Career Roadmap", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 14)
	pdf.Ln(3)
	pdf.CellFormat(0, 10, fmt.Sprintf("Target Role: %s", targetRole), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, "Steps:", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, step := range result.Roadmap {
		header := fmt.Sprintf("%d. %s (%s effort)", step.Position, step.Skill, step.Effort)
		if step.Prerequisite > 0 {
			header += fmt.Sprintf(" - after step %d", step.Prerequisite)
		}
		pdf.MultiCell(0, 8, header, "", "L", false)
		for _, action := range step.Actions {
			pdf.MultiCell(0, 8, "   - "+action, "", "L", false)
		}
		pdf.Ln(1)
	}

	if result.Report.DroppedGaps > 0 {
		pdf.Ln(2)
		pdf.MultiCell(0, 8, fmt.Sprintf("%d additional skill gaps were identified but omitted to keep the roadmap focused.", result.Report.DroppedGaps), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write roadmap pdf: %w", err)
	}
	return nil
}
