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

var (
	rfiResponseDays    = []int{3, 5, 7, 10, 14, 21, 0}
	rfiResponseWeights = []float64{0.15, 0.25, 0.25, 0.15, 0.10, 0.05, 0.05}

	rfiPriorities      = []string{"Low", "Medium", "High", "Critical"}
	rfiPriorityWeights = []float64{0.20, 0.45, 0.25, 0.10}
)

// generateRFIs produces the RFI log. A response delay is drawn from a
// weighted distribution; a zero draw means no response yet and the RFI
// stays Open or Pending Response.
func (g *Generator) generateRFIs(project model.Project, start time.Time) []model.RFI {
	var numRFIs int
	switch project.Complexity {
	case model.ComplexityLow:
		numRFIs = g.src.IntBetween(15, 30)
	case model.ComplexityMedium:
		numRFIs = g.src.IntBetween(30, 60)
	default:
		numRFIs = g.src.IntBetween(50, 100)
	}

	durationDays := project.DurationMonths * 30

	rfis := make([]model.RFI, 0, numRFIs)
	for i := 0; i < numRFIs; i++ {
		submitted := start.AddDate(0, 0, g.src.IntBetween(14, durationDays-14))
		responseDays := random.WeightedChoice(g.src, rfiResponseDays, rfiResponseWeights)

		grid := fmt.Sprintf("%c-%d", random.Choice(g.src, []byte("ABCDEFGH")), g.src.IntBetween(1, 12))
		subject := g.renderer.Render(random.Choice(g.src, catalog.RFISubjects), text.Context{
			"grid":     grid,
			"room":     fmt.Sprintf("Room %d", g.src.IntBetween(100, 600)),
			"location": fmt.Sprintf("Floor %d, Grid %c-%d", g.src.IntBetween(1, project.Floors), random.Choice(g.src, []byte("ABCDEFGH")), g.src.IntBetween(1, 12)),
			"elev":     fmt.Sprintf(`+%d'-0"`, g.src.IntBetween(10, 50)),
			"system":   random.Choice(g.src, []string{"AHU-1", "CHW Loop", "HW Loop", "Exhaust System", "VAV Zone 3"}),
			"area":     random.Choice(g.src, []string{"mechanical room", "ceiling plenum", "exterior wall", "elevator shaft"}),
			"weight":   random.Choice(g.src, []string{"500", "1000", "2000"}),
		})

		rfi := model.RFI{
			ProjectID:      project.ID,
			RFINumber:      fmt.Sprintf("RFI-%03d", i+1),
			DateSubmitted:  submitted,
			Subject:        subject,
			SubmittedBy:    random.Choice(g.src, []string{"J. Martinez - Project Manager", "K. Thompson - Foreman", "R. Williams - Engineer"}),
			AssignedTo:     random.Choice(g.src, []string{"Architect", "MEP Engineer", "Structural Engineer", "Owner"}),
			Priority:       random.WeightedChoice(g.src, rfiPriorities, rfiPriorityWeights),
			DateRequired:   submitted.AddDate(0, 0, g.src.IntBetween(7, 21)),
			CostImpact:     random.Choice(g.src, []bool{true, false, false, false}),
			ScheduleImpact: random.Choice(g.src, []bool{true, false, false, false, false}),
		}

		if responseDays > 0 {
			responded := submitted.AddDate(0, 0, responseDays)
			summary := g.renderer.Render(random.Choice(g.src, catalog.RFIResponseSummaries), text.Context{
				"asi":   fmt.Sprintf("%d", g.src.IntBetween(1, 20)),
				"trade": random.Choice(g.src, []string{"electrical", "plumbing", "structural"}),
			})
			rfi.Status = model.RFIClosed
			rfi.DateResponded = &responded
			rfi.ResponseSummary = &summary
		} else {
			rfi.Status = random.Choice(g.src, []model.RFIStatus{model.RFIOpen, model.RFIPendingResponse})
		}

		rfis = append(rfis, rfi)
	}

	sort.SliceStable(rfis, func(i, j int) bool {
		return rfis[i].DateSubmitted.Before(rfis[j].DateSubmitted)
	})
	return rfis
}
