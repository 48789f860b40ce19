package generator

import (
	"fmt"
	"sort"
	"time"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/model"
	"github.com/mechdata/hvac-dataset/internal/random"
	"github.com/mechdata/hvac-dataset/internal/text"
)

// Staleness thresholds for change order status assignment, in days relative
// to the configured as-of timestamp.
const (
	coFreshDays = 14
	coAgingDays = 45
)

// generateChangeOrders produces contract modifications. The count scales
// with complexity, the value band depends on the reason category, and the
// status distribution depends on how stale the submission is at asOf.
func (g *Generator) generateChangeOrders(project model.Project, contractValue float64, sovLines []model.SOVLine, start time.Time) []model.ChangeOrder {
	var numCOs int
	switch project.Complexity {
	case model.ComplexityLow:
		numCOs = g.src.IntBetween(3, 6)
	case model.ComplexityMedium:
		numCOs = g.src.IntBetween(6, 12)
	default:
		numCOs = g.src.IntBetween(10, 20)
	}

	durationDays := project.DurationMonths * 30
	sovIDs := make([]string, len(sovLines))
	for i, line := range sovLines {
		sovIDs[i] = line.SOVLineID
	}

	orders := make([]model.ChangeOrder, 0, numCOs)
	for i := 0; i < numCOs; i++ {
		reason := random.Choice(g.src, catalog.ChangeOrderReasons)

		var amount float64
		switch reason.Category {
		case "Value Engineering":
			// Credits run smaller than adds.
			amount = -g.src.Uniform(0.002, 0.015) * contractValue
		case "Owner Request", "Scope Gap":
			amount = g.src.Uniform(0.005, 0.04) * contractValue
		default:
			amount = g.src.Uniform(0.002, 0.025) * contractValue
		}
		amount = roundToNearest(amount, 100)

		submitted := start.AddDate(0, 0, g.src.IntBetween(30, durationDays-30))
		status := g.changeOrderStatus(submitted)

		description := g.renderer.Render(reason.Template, text.Context{
			"item":        random.Choice(g.src, []string{"exhaust fan", "VAV boxes", "chilled water piping", "controls points"}),
			"dimension":   random.Choice(g.src, []string{"duct size", "pipe elevation", "equipment clearance"}),
			"condition":   random.Choice(g.src, []string{"existing ductwork", "abandoned piping", "structural conflict", "asbestos insulation"}),
			"trade":       random.Choice(g.src, []string{"electrical", "plumbing", "fire protection", "structural"}),
			"requirement": random.Choice(g.src, []string{"additional smoke detectors", "seismic upgrades", "fire dampers", "access panels"}),
			"old_item":    random.Choice(g.src, []string{"Carrier RTU", "Trane chiller", "copper piping"}),
			"new_item":    random.Choice(g.src, []string{"Daikin RTU", "York chiller", "steel piping"}),
		})

		var relatedRFI *string
		if g.src.Float64() > 0.4 {
			ref := fmt.Sprintf("RFI-%03d", g.src.IntBetween(1, 30))
			relatedRFI = &ref
		}

		laborImpact := g.src.IntBetween(8, 200)
		scheduleImpact := 0
		if amount > 0 {
			scheduleImpact = random.Choice(g.src, []int{0, 0, 0, 0, 2, 5, 7, 14})
		} else {
			laborImpact = -g.src.IntBetween(8, 100)
		}

		var approvedBy *string
		if approver := random.Choice(g.src, []string{"Project Manager", "Owner Rep", ""}); approver != "" {
			approvedBy = &approver
		}

		orders = append(orders, model.ChangeOrder{
			ProjectID:          project.ID,
			CONumber:           fmt.Sprintf("CO-%03d", i+1),
			DateSubmitted:      submitted,
			ReasonCategory:     reason.Category,
			Description:        description,
			Amount:             amount,
			Status:             status,
			RelatedRFI:         relatedRFI,
			AffectedSOVLines:   random.Sample(g.src, sovIDs, g.src.IntBetween(1, 3)),
			LaborHoursImpact:   laborImpact,
			ScheduleImpactDays: scheduleImpact,
			SubmittedBy:        random.Choice(g.src, catalog.COSubmitters),
			ApprovedBy:         approvedBy,
		})
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].DateSubmitted.Before(orders[j].DateSubmitted)
	})
	return orders
}

func (g *Generator) changeOrderStatus(submitted time.Time) model.ChangeOrderStatus {
	ageDays := int(g.asOf.Sub(submitted).Hours() / 24)
	switch {
	case ageDays < coFreshDays:
		return random.Choice(g.src, []model.ChangeOrderStatus{
			model.ChangeOrderPending, model.ChangeOrderUnderReview,
		})
	case ageDays < coAgingDays:
		return random.Choice(g.src, []model.ChangeOrderStatus{
			model.ChangeOrderUnderReview, model.ChangeOrderApproved, model.ChangeOrderRejected,
		})
	default:
		return random.Choice(g.src, []model.ChangeOrderStatus{
			model.ChangeOrderApproved, model.ChangeOrderApproved,
			model.ChangeOrderApproved, model.ChangeOrderRejected,
		})
	}
}
