package generator

import (
	"math"
	"time"

	"github.com/mechdata/hvac-dataset/internal/model"
	"github.com/mechdata/hvac-dataset/internal/random"
)

// lineAccount tracks cumulative billing against one SOV line across the
// monthly draw schedule. The accounts are owned by the engine for one
// project and discarded afterwards.
type lineAccount struct {
	line   model.SOVLine
	billed float64
}

// sCurve maps progress-through-project to overall percent complete: slow
// start, linear peak production, tapering closeout.
func sCurve(monthPct float64) float64 {
	var mult float64
	switch {
	case monthPct < 0.15:
		mult = monthPct * 2
	case monthPct < 0.85:
		mult = 0.3 + (monthPct - 0.15)
	default:
		mult = 0.95 + (monthPct-0.85)*0.33
	}
	return clamp01(mult)
}

// lineTargetPct derives a per-line completion target from the overall
// S-curve position. Early lines run ahead, core work tracks the curve, and
// controls/insulation and closeout lines lag with steeper ramps.
func lineTargetPct(lineNumber int, progressMult float64) float64 {
	var target float64
	switch {
	case lineNumber <= 2:
		target = progressMult * 1.3
	case lineNumber <= 9:
		target = progressMult
	case lineNumber <= 12:
		target = math.Max(progressMult-0.15, 0) * 1.15
	default:
		target = math.Max(progressMult-0.3, 0) * 1.4
	}
	return clamp01(target)
}

// generateBillingHistory converts the SOV allocation into a monthly draw
// schedule. For each period, every line bills up to its S-curve target with
// a damping factor and $100 rounding, hard-capped at the line's scheduled
// value. The S-curve is evaluated at period end, and the final application
// trues each line up to its full scheduled value, so the schedule closes
// exactly at the SOV total. Applications are only emitted for periods with
// positive billing.
func (g *Generator) generateBillingHistory(project model.Project, sovLines []model.SOVLine, start time.Time) []model.BillingApplication {
	accounts := make([]lineAccount, len(sovLines))
	for i, line := range sovLines {
		accounts[i] = lineAccount{line: line}
	}

	duration := project.DurationMonths
	var applications []model.BillingApplication

	// The raw curve dips where the taper branch starts, so progress is held
	// at its running maximum and line targets never regress.
	progressMult := 0.0

	for month := 0; month <= duration; month++ {
		billingDate := start.AddDate(0, 0, 30*month+25)
		progressMult = math.Max(progressMult, sCurve(clamp01(float64(month+1)/float64(duration))))
		finalPeriod := month == duration

		var lineItems []model.BillingLineItem
		periodTotal := 0.0

		for i := range accounts {
			acct := &accounts[i]
			scheduled := acct.line.ScheduledValue

			var periodBilling float64
			if finalPeriod {
				// Closeout true-up: release the remaining balance.
				periodBilling = scheduled - acct.billed
			} else {
				target := scheduled * lineTargetPct(acct.line.LineNumber, progressMult)
				periodBilling = math.Max(target-acct.billed, 0)
				periodBilling *= g.src.Uniform(0.85, 1.0)
				periodBilling = roundToNearest(periodBilling, 100)
				if acct.billed+periodBilling > scheduled {
					periodBilling = scheduled - acct.billed
				}
			}

			if periodBilling <= 0 {
				continue
			}

			acct.billed += periodBilling
			periodTotal += periodBilling

			lineItems = append(lineItems, model.BillingLineItem{
				SOVLineID:       acct.line.SOVLineID,
				Description:     acct.line.Description,
				ScheduledValue:  scheduled,
				PreviousBilled:  acct.billed - periodBilling,
				ThisPeriod:      periodBilling,
				TotalBilled:     acct.billed,
				PctComplete:     math.Round(acct.billed/scheduled*1000) / 10,
				BalanceToFinish: scheduled - acct.billed,
			})
		}

		if periodTotal <= 0 {
			continue
		}

		cumulative := 0.0
		for _, acct := range accounts {
			cumulative += acct.billed
		}
		retention := cumulative * 0.10

		status := model.BillingPending
		if month < duration-1 {
			status = random.Choice(g.src, []model.BillingStatus{
				model.BillingPaid, model.BillingPaid, model.BillingPaid,
				model.BillingPending, model.BillingApproved,
			})
		}

		var paymentDate *time.Time
		if g.src.Float64() > 0.2 {
			paid := billingDate.AddDate(0, 0, g.src.IntBetween(25, 40))
			paymentDate = &paid
		}

		applications = append(applications, model.BillingApplication{
			ProjectID:         project.ID,
			ApplicationNumber: month + 1,
			PeriodEnd:         billingDate,
			PeriodTotal:       periodTotal,
			CumulativeBilled:  cumulative,
			RetentionHeld:     retention,
			NetPaymentDue:     cumulative - retention,
			Status:            status,
			PaymentDate:       paymentDate,
			LineItems:         lineItems,
		})
	}

	return applications
}
