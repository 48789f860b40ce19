package generator

import (
	"time"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/model"
	"github.com/mechdata/hvac-dataset/internal/random"
)

var contractEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// generateContract derives the contract value from the project's physical
// attributes: area times a per-type cost range, scaled by complexity and
// rounded to the nearest $1,000.
func (g *Generator) generateContract(project model.Project) model.Contract {
	costRange := catalog.CostPerSqFt[string(project.Type)]
	base := float64(project.SqFt) * g.src.Uniform(costRange.Min, costRange.Max)
	base *= catalog.ComplexityMultiplier[string(project.Complexity)]
	base = roundToNearest(base, 1000)

	contractDate := contractEpoch.AddDate(0, 0, g.src.IntBetween(0, 90))
	completionDate := contractEpoch.AddDate(0, 0, g.src.IntBetween(0, 90)+project.DurationMonths*30)

	return model.Contract{
		ProjectID:                 project.ID,
		ProjectName:               project.Name,
		OriginalContractValue:     base,
		ContractDate:              contractDate,
		SubstantialCompletionDate: completionDate,
		RetentionPct:              0.10,
		PaymentTerms:              "Net 30",
		GCName:                    random.Choice(g.src, catalog.GeneralContractors),
		Architect:                 random.Choice(g.src, catalog.Architects),
		EngineerOfRecord:          random.Choice(g.src, catalog.Engineers),
	}
}
