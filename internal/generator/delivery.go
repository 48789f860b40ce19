package generator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/model"
	"github.com/mechdata/hvac-dataset/internal/random"
)

// generateDeliveries emits material receipts for every SOV line that maps to
// a material category. Each line gets 3-8 deliveries whose normalized
// random weights split the line's material budget, so the delivery totals
// sum to scheduled_value * material_pct up to float rounding.
func (g *Generator) generateDeliveries(project model.Project, sovLines []model.SOVLine, start time.Time) []model.Delivery {
	var deliveries []model.Delivery
	durationDays := project.DurationMonths * 30

	for _, line := range sovLines {
		category, ok := catalog.MaterialCategoryForLine(line.LineNumber)
		if !ok {
			continue
		}

		materialBudget := line.MaterialBudget()
		numDeliveries := g.src.IntBetween(3, 8)

		weights := make([]float64, numDeliveries)
		totalWeight := 0.0
		for i := range weights {
			weights[i] = g.src.Float64()
			totalWeight += weights[i]
		}

		for _, weight := range weights {
			value := weight / totalWeight * materialBudget

			// Earlier SOV lines procure earlier.
			var dayOffset int
			switch {
			case line.LineNumber <= 4:
				dayOffset = g.src.IntBetween(15, int(float64(durationDays)*0.4))
			case line.LineNumber <= 9:
				dayOffset = g.src.IntBetween(int(float64(durationDays)*0.15), int(float64(durationDays)*0.7))
			default:
				dayOffset = g.src.IntBetween(int(float64(durationDays)*0.4), int(float64(durationDays)*0.9))
			}

			item := random.Choice(g.src, category.Items)
			qty, unit := g.deliveryQuantity(item)

			deliveries = append(deliveries, model.Delivery{
				ProjectID:        project.ID,
				DeliveryID:       fmt.Sprintf("DEL-%s-%s", project.ID[len(project.ID)-3:], g.hexID(6)),
				Date:             start.AddDate(0, 0, dayOffset),
				SOVLineID:        line.SOVLineID,
				MaterialCategory: category.Category,
				ItemDescription:  item,
				Quantity:         qty,
				Unit:             unit,
				UnitCost:         round2(value / float64(qty)),
				TotalCost:        round2(value),
				PONumber:         fmt.Sprintf("PO-%d", g.src.IntBetween(10000, 99999)),
				Vendor:           random.Choice(g.src, catalog.Vendors),
				ReceivedBy:       random.Choice(g.src, catalog.Receivers),
				ConditionNotes:   random.Choice(g.src, catalog.ConditionNotes),
			})
		}
	}

	sort.SliceStable(deliveries, func(i, j int) bool {
		return deliveries[i].Date.Before(deliveries[j].Date)
	})
	return deliveries
}

// deliveryQuantity picks a unit scheme and quantity range by matching
// keywords in the item name.
func (g *Generator) deliveryQuantity(item string) (int, string) {
	contains := func(subs ...string) bool {
		for _, sub := range subs {
			if strings.Contains(item, sub) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("RTU", "Chiller", "Boiler", "AHU"):
		return g.src.IntBetween(1, 4), "EA"
	case contains("Sheet Metal"):
		return g.src.IntBetween(20, 100), "SHEET"
	case contains("Duct"):
		return g.src.IntBetween(50, 500), "LF"
	case contains("Pipe", "Copper", "Steel"):
		return g.src.IntBetween(100, 1000), "LF"
	case contains("VAV", "FCU"):
		return g.src.IntBetween(5, 40), "EA"
	case contains("Controller", "Sensor", "Actuator"):
		return g.src.IntBetween(10, 100), "EA"
	default:
		return g.src.IntBetween(5, 50), "EA"
	}
}
