package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/model"
)

// allocateSOV splits the contract value across the 15 template categories.
// Each line's share is drawn within its declared range, the vector is
// normalized to 1.0 and each line rounded to the nearest $100. The rounding
// residue goes entirely to the last line, so the lines sum to the contract
// value to the dollar.
func (g *Generator) allocateSOV(project model.Project, contractValue float64) []model.SOVLine {
	rawPcts := make([]float64, len(catalog.SOVTemplate))
	totalPct := 0.0
	for i, item := range catalog.SOVTemplate {
		rawPcts[i] = g.src.Uniform(item.PctMin, item.PctMax)
		totalPct += rawPcts[i]
	}

	lines := make([]model.SOVLine, 0, len(catalog.SOVTemplate))
	for i, item := range catalog.SOVTemplate {
		lineValue := roundToNearest(contractValue*rawPcts[i]/totalPct, 100)

		laborPct := g.src.Uniform(0.55, 0.75)
		materialPct := g.src.Uniform(0.25, 0.45)
		if strings.Contains(item.Description, "Equipment") {
			laborPct = g.src.Uniform(0.15, 0.30)
			materialPct = g.src.Uniform(0.70, 0.85)
		}

		lineNumber, _ := strconv.Atoi(item.Code)
		lines = append(lines, model.SOVLine{
			ProjectID:      project.ID,
			SOVLineID:      fmt.Sprintf("%s-SOV-%s", project.ID, item.Code),
			LineNumber:     lineNumber,
			Description:    item.Description,
			ScheduledValue: lineValue,
			LaborPct:       laborPct,
			MaterialPct:    materialPct,
		})
	}

	// Conservation repair: the last line absorbs the rounding residue.
	currentTotal := 0.0
	for _, line := range lines {
		currentTotal += line.ScheduledValue
	}
	lines[len(lines)-1].ScheduledValue += contractValue - currentTotal

	return lines
}
