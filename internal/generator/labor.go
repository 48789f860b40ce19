package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/model"
	"github.com/mechdata/hvac-dataset/internal/random"
)

// laborPhaseLines maps progress-through-project to the SOV line numbers a
// crew can charge time against in that window.
var laborPhaseLines = []struct {
	below float64
	lines []int
}{
	{below: 0.10, lines: []int{1, 2}},
	{below: 0.30, lines: []int{1, 2, 3, 4, 5}},
	{below: 0.60, lines: []int{1, 3, 4, 5, 6, 7, 8, 9}},
	{below: 0.85, lines: []int{1, 9, 10, 11, 12}},
	{below: 1.01, lines: []int{1, 11, 13, 14, 15}},
}

func activeSOVLines(sovLines []model.SOVLine, phasePct float64) []model.SOVLine {
	var wanted []int
	for _, phase := range laborPhaseLines {
		if phasePct < phase.below {
			wanted = phase.lines
			break
		}
	}

	var active []model.SOVLine
	for _, line := range sovLines {
		for _, n := range wanted {
			if line.LineNumber == n {
				active = append(active, line)
				break
			}
		}
	}
	if len(active) == 0 {
		active = sovLines[:1]
	}
	return active
}

// generateLaborLogs walks the project's work days and emits one entry per
// worker per day. Crew size follows the mobilization/peak/closeout phases
// and each entry is charged to a randomly chosen phase-active SOV line.
// Labor is informational volume: no budget cap applies.
func (g *Generator) generateLaborLogs(project model.Project, sovLines []model.SOVLine, start time.Time) []model.LaborLogEntry {
	var logs []model.LaborLogEntry
	durationDays := project.DurationMonths * workDaysPerMonth

	current := start
	for day := 0; day < durationDays; {
		if isWeekend(current) {
			current = current.AddDate(0, 0, 1)
			continue
		}

		phasePct := float64(day) / float64(durationDays)
		var baseCrew int
		switch {
		case phasePct < 0.15: // mobilization and submittals
			baseCrew = g.src.IntBetween(2, 5)
		case phasePct < 0.75: // peak production
			if project.Complexity == model.ComplexityHigh {
				baseCrew = g.src.IntBetween(8, 18)
			} else {
				baseCrew = g.src.IntBetween(5, 12)
			}
		default: // closeout
			baseCrew = g.src.IntBetween(3, 7)
		}

		active := activeSOVLines(sovLines, phasePct)

		workers := random.Sample(g.src, catalog.CrewRoles, min(baseCrew, len(catalog.CrewRoles)))
		if baseCrew > len(catalog.CrewRoles) {
			var common []catalog.CrewRole
			for _, role := range catalog.CrewRoles {
				if strings.Contains(role.Role, "Journeyman") || strings.Contains(role.Role, "Apprentice") {
					common = append(common, role)
				}
			}
			for i := 0; i < baseCrew-len(catalog.CrewRoles); i++ {
				workers = append(workers, random.Choice(g.src, common))
			}
		}

		for _, worker := range workers {
			assigned := random.Choice(g.src, active)

			var hoursST, hoursOT float64
			if g.src.Chance(0.15) {
				hoursST = 8
				hoursOT = float64(random.Choice(g.src, []int{2, 4}))
			} else {
				hoursST = 8
				if g.src.Chance(0.10) {
					hoursST = float64(random.Choice(g.src, []int{4, 6, 10}))
				}
			}

			logs = append(logs, model.LaborLogEntry{
				ProjectID:        project.ID,
				LogID:            g.shortID(),
				Date:             current,
				EmployeeID:       fmt.Sprintf("EMP-%d", g.src.IntBetween(1000, 9999)),
				Role:             worker.Role,
				SOVLineID:        assigned.SOVLineID,
				HoursST:          hoursST,
				HoursOT:          hoursOT,
				HourlyRate:       worker.HourlyRate,
				BurdenMultiplier: worker.BurdenRate,
				WorkArea:         fmt.Sprintf("Floor %d", g.src.IntBetween(1, project.Floors)),
				CostCode:         assigned.LineNumber,
			})
		}

		current = current.AddDate(0, 0, 1)
		day++
	}

	return logs
}
