package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/model"
)

func TestDeliveriesConserveMaterialBudget(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(12, model.ComplexityMedium)

	for seed := int64(1); seed <= 10; seed++ {
		g := newTestGenerator(seed)
		lines := g.allocateSOV(project, 2000000)

		totals := map[string]float64{}
		counts := map[string]int{}
		for _, d := range g.generateDeliveries(project, lines, start) {
			totals[d.SOVLineID] += d.TotalCost
			counts[d.SOVLineID]++
		}

		for _, line := range lines {
			if _, ok := catalog.MaterialCategoryForLine(line.LineNumber); !ok {
				require.NotContains(t, totals, line.SOVLineID,
					"seed %d: non-material line %s got deliveries", seed, line.SOVLineID)
				continue
			}
			// Per-delivery cent rounding bounds the drift.
			require.InDelta(t, line.MaterialBudget(), totals[line.SOVLineID], 0.05,
				"seed %d: line %s deliveries do not sum to material budget", seed, line.SOVLineID)
			require.GreaterOrEqual(t, counts[line.SOVLineID], 3)
			require.LessOrEqual(t, counts[line.SOVLineID], 8)
		}
	}
}

func TestDeliveriesAreSortedAndInWindow(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(12, model.ComplexityMedium)
	end := start.AddDate(0, 0, project.DurationMonths*30)

	g := newTestGenerator(42)
	lines := g.allocateSOV(project, 2000000)
	deliveries := g.generateDeliveries(project, lines, start)
	require.NotEmpty(t, deliveries)

	prev := time.Time{}
	for _, d := range deliveries {
		require.False(t, d.Date.Before(prev), "deliveries not sorted by date")
		require.False(t, d.Date.Before(start))
		require.False(t, d.Date.After(end))
		prev = d.Date
	}
}

func TestDeliveryRecordFields(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(12, model.ComplexityMedium)

	g := newTestGenerator(42)
	lines := g.allocateSOV(project, 2000000)

	categories := map[string]string{}
	for _, line := range lines {
		if cat, ok := catalog.MaterialCategoryForLine(line.LineNumber); ok {
			categories[line.SOVLineID] = cat.Category
		}
	}

	for _, d := range g.generateDeliveries(project, lines, start) {
		require.Equal(t, project.ID, d.ProjectID)
		require.Equal(t, categories[d.SOVLineID], d.MaterialCategory)
		require.Positive(t, d.Quantity)
		require.NotEmpty(t, d.Unit)
		require.Positive(t, d.TotalCost)
		require.InDelta(t, d.TotalCost/float64(d.Quantity), d.UnitCost, 0.01)
		require.Regexp(t, `^DEL-\d{3}-[0-9a-f]{6}$`, d.DeliveryID)
		require.Regexp(t, `^PO-\d{5}$`, d.PONumber)
		require.NotEmpty(t, d.Vendor)
		require.NotEmpty(t, d.ReceivedBy)
	}
}

func TestDeliveryQuantityUnits(t *testing.T) {
	g := newTestGenerator(42)

	cases := []struct {
		item     string
		unit     string
		min, max int
	}{
		{"RTU 25-Ton", "EA", 1, 4},
		{"Chiller 200-Ton", "EA", 1, 4},
		{"Galvanized Sheet Metal 22ga", "SHEET", 20, 100},
		{`Spiral Duct 16"`, "LF", 50, 500},
		{`Copper Type L 2"`, "LF", 100, 1000},
		{`VAV Box 12"`, "EA", 5, 40},
		{"Temp Sensor", "EA", 10, 100},
		{"Vapor Barrier Tape", "EA", 5, 50},
	}

	for _, tc := range cases {
		for i := 0; i < 20; i++ {
			qty, unit := g.deliveryQuantity(tc.item)
			require.Equal(t, tc.unit, unit, tc.item)
			require.GreaterOrEqual(t, qty, tc.min, tc.item)
			require.LessOrEqual(t, qty, tc.max, tc.item)
		}
	}
}
