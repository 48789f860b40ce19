package generator

import (
	"fmt"
	"math"
	"time"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/model"
	"github.com/mechdata/hvac-dataset/internal/random"
)

var bidEpoch = time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)

// generateBidEstimate back-derives an as-bid snapshot from the finalized
// SOV allocation: estimated labor hours come from each line's labor budget
// at the blended rate, everything else is sampled assumption scaffolding.
func (g *Generator) generateBidEstimate(project model.Project, contractValue float64, sovLines []model.SOVLine) model.BidEstimate {
	totalLaborHours := 0.0
	for _, line := range sovLines {
		totalLaborHours += line.LaborBudget() / blendedLaborRate
	}

	bidDate := bidEpoch.AddDate(0, 0, g.src.IntBetween(0, 60))

	return model.BidEstimate{
		ProjectID: project.ID,
		BidDate:   bidDate,
		BidAmount: contractValue,
		Estimator: random.Choice(g.src, catalog.Estimators),

		Labor: model.LaborAssumptions{
			TotalHoursEstimated: int(math.Round(totalLaborHours)),
			BlendedLaborRate:    blendedLaborRate,
			ProductivityFactor:  g.src.Uniform(0.85, 0.95),
			CrewMix: model.CrewMix{
				ForemanPct:    0.08,
				JourneymanPct: 0.45,
				ApprenticePct: 0.35,
				HelperPct:     0.12,
			},
			OvertimeAllowancePct: g.src.Uniform(0.05, 0.12),
			ShiftPremium:         0.0,
		},

		Material: model.MaterialAssumptions{
			EscalationFactorPct: g.src.Uniform(0.02, 0.05),
			WasteFactorPct:      g.src.Uniform(0.03, 0.08),
			FreightPct:          g.src.Uniform(0.02, 0.04),
			KeyMaterialQuotes: []model.MaterialQuote{
				{Item: "Major Equipment", Vendor: random.Choice(g.src, catalog.EquipmentVendors), QuoteDate: bidDate, ValidityDays: 60},
				{Item: "Sheet Metal", Vendor: "Local Fab Shop", QuoteDate: bidDate, ValidityDays: 30},
				{Item: "Controls", Vendor: random.Choice(g.src, catalog.ControlsVendors), QuoteDate: bidDate, ValidityDays: 45},
			},
		},

		Subs: model.SubcontractorAssumptions{
			InsulationSub: model.SubQuote{Name: "ABC Insulation", Quote: round2(contractValue * 0.045)},
			TABSub:        model.SubQuote{Name: "XYZ Balancing", Quote: round2(contractValue * 0.025)},
			ControlsSub:   model.SubQuote{Name: "Smart Building Controls", Quote: round2(contractValue * 0.08)},
		},

		GeneralConds: model.GeneralConditions{
			ProjectManagementMonths: project.DurationMonths,
			SiteSupervisionMonths:   project.DurationMonths,
			EquipmentRentalMonths:   int(math.Round(float64(project.DurationMonths) * 0.6)),
			SmallToolsPct:           0.015,
			ConsumablesPct:          0.01,
		},

		Markup: model.Markup{
			OverheadPct:  g.src.Uniform(0.08, 0.12),
			ProfitPct:    g.src.Uniform(0.04, 0.08),
			BondPct:      0.015,
			InsurancePct: g.src.Uniform(0.02, 0.035),
		},

		Risk: model.RiskAllowances{
			DesignContingencyPct:     g.src.Uniform(0.02, 0.05),
			EscalationContingencyPct: g.src.Uniform(0.02, 0.04),
			ScheduleRiskPct:          g.src.Uniform(0.01, 0.03),
		},

		KeyAssumptions: []string{
			fmt.Sprintf("Project duration: %d months from NTP", project.DurationMonths),
			"Work performed during normal hours (7:00 AM - 3:30 PM)",
			"GC to provide adequate laydown area and hoisting",
			"MEP coordination via BIM - 3 weeks prior to each floor",
			fmt.Sprintf("Equipment access via %s", random.Choice(g.src, []string{"loading dock", "temporary opening", "roof hatch"})),
			"Fire watch by GC when required",
			"Temporary power and water by GC",
			fmt.Sprintf("Assumes %s labor", random.Choice(g.src, []string{"union", "open shop"})),
		},

		Exclusions: []string{
			"Hazardous material abatement",
			"Structural modifications",
			"Electrical connections (by EC)",
			"Architectural louvers and grilles",
			"Access flooring",
			"Fire suppression (by FP contractor)",
			"Plumbing (by plumber)",
			"Testing beyond standard TAB",
		},

		Clarifications: []string{
			"Ductwork pricing based on spec section 23 31 00",
			"Equipment selections per approved substitution list",
			"Refrigerant pricing based on current market - subject to adjustment",
			"Control points count per attached schedule",
		},
	}
}
