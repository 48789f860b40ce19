package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mechdata/hvac-dataset/internal/model"
)

func TestBillingHistoryClosesAtSOVTotal(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(12, model.ComplexityMedium)

	for seed := int64(1); seed <= 10; seed++ {
		g := newTestGenerator(seed)
		lines := g.allocateSOV(project, 1000000)

		apps := g.generateBillingHistory(project, lines, start)

		// 12 monthly draws plus the closeout true-up.
		require.Len(t, apps, 13, "seed %d", seed)
		last := apps[len(apps)-1]
		require.InDelta(t, 1000000, last.CumulativeBilled, 1e-6, "seed %d: schedule did not close", seed)
		require.Equal(t, model.BillingPending, last.Status)
	}
}

func TestBillingCumulativeIsMonotone(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(12, model.ComplexityMedium)

	for seed := int64(1); seed <= 10; seed++ {
		g := newTestGenerator(seed)
		lines := g.allocateSOV(project, 1000000)

		apps := g.generateBillingHistory(project, lines, start)

		prevCumulative := 0.0
		prevNumber := 0
		for _, app := range apps {
			require.Greater(t, app.ApplicationNumber, prevNumber)
			require.Positive(t, app.PeriodTotal)
			require.GreaterOrEqual(t, app.CumulativeBilled, prevCumulative)
			require.InDelta(t, prevCumulative+app.PeriodTotal, app.CumulativeBilled, 1e-6)

			prevCumulative = app.CumulativeBilled
			prevNumber = app.ApplicationNumber
		}
	}
}

func TestBillingRetentionAndNetDue(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(12, model.ComplexityMedium)

	g := newTestGenerator(42)
	lines := g.allocateSOV(project, 1000000)

	for _, app := range g.generateBillingHistory(project, lines, start) {
		require.InDelta(t, app.CumulativeBilled*0.10, app.RetentionHeld, 1e-6)
		require.InDelta(t, app.CumulativeBilled-app.RetentionHeld, app.NetPaymentDue, 1e-6)
	}
}

func TestBillingNeverOverbillsALine(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(12, model.ComplexityMedium)

	for seed := int64(1); seed <= 10; seed++ {
		g := newTestGenerator(seed)
		lines := g.allocateSOV(project, 1000000)

		scheduled := map[string]float64{}
		for _, line := range lines {
			scheduled[line.SOVLineID] = line.ScheduledValue
		}

		billed := map[string]float64{}
		for _, app := range g.generateBillingHistory(project, lines, start) {
			for _, item := range app.LineItems {
				require.Positive(t, item.ThisPeriod)
				require.InDelta(t, item.PreviousBilled+item.ThisPeriod, item.TotalBilled, 1e-6)
				require.InDelta(t, item.ScheduledValue-item.TotalBilled, item.BalanceToFinish, 1e-6)
				require.InDelta(t, billed[item.SOVLineID], item.PreviousBilled, 1e-6)
				require.LessOrEqual(t, item.TotalBilled, scheduled[item.SOVLineID]+1e-6,
					"seed %d: line %s billed past scheduled value", seed, item.SOVLineID)
				require.LessOrEqual(t, item.PctComplete, 100.0)

				billed[item.SOVLineID] = item.TotalBilled
			}
		}

		for id, total := range billed {
			require.InDelta(t, scheduled[id], total, 1e-6, "seed %d: line %s never closed", seed, id)
		}
	}
}

func TestBillingPaymentDatesFollowPeriodEnd(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(12, model.ComplexityMedium)

	g := newTestGenerator(42)
	lines := g.allocateSOV(project, 1000000)

	for _, app := range g.generateBillingHistory(project, lines, start) {
		if app.PaymentDate == nil {
			continue
		}
		gap := app.PaymentDate.Sub(app.PeriodEnd).Hours() / 24
		require.GreaterOrEqual(t, gap, 25.0)
		require.LessOrEqual(t, gap, 40.0)
	}
}

func TestSCurveShape(t *testing.T) {
	require.Equal(t, 0.0, sCurve(0))
	require.InDelta(t, 0.2, sCurve(0.1), 1e-9)
	require.InDelta(t, 0.65, sCurve(0.5), 1e-9)
	require.InDelta(t, 0.95, sCurve(0.85), 1e-9)
	require.InDelta(t, 0.9995, sCurve(1.0), 1e-9)
}

func TestLineTargetPctBuckets(t *testing.T) {
	// Early lines run ahead of the curve, late lines lag it.
	require.InDelta(t, 0.65, lineTargetPct(1, 0.5), 1e-9)
	require.InDelta(t, 0.5, lineTargetPct(5, 0.5), 1e-9)
	require.InDelta(t, 0.4025, lineTargetPct(10, 0.5), 1e-9)
	require.InDelta(t, 0.28, lineTargetPct(14, 0.5), 1e-9)

	// Closeout lines have not started early on.
	require.Equal(t, 0.0, lineTargetPct(14, 0.2))

	// Everything clamps at 100%.
	require.Equal(t, 1.0, lineTargetPct(1, 1.0))
	require.Equal(t, 1.0, lineTargetPct(14, 1.0))
}
