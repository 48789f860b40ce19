package generator

import (
	"fmt"
	"time"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/model"
	"github.com/mechdata/hvac-dataset/internal/random"
	"github.com/mechdata/hvac-dataset/internal/text"
)

// generateFieldNotes emits unstructured daily-report entries for roughly 70%
// of work days. Content is rendered by the text collaborator from the field
// note templates.
func (g *Generator) generateFieldNotes(project model.Project, start time.Time) []model.FieldNote {
	var notes []model.FieldNote
	durationDays := project.DurationMonths * workDaysPerMonth

	current := start
	for day := 0; day < durationDays; {
		if isWeekend(current) {
			current = current.AddDate(0, 0, 1)
			continue
		}

		if g.src.Chance(0.70) {
			template := random.Choice(g.src, catalog.FieldNoteTemplates)
			content := g.renderer.Render(template, g.fieldNoteContext(project))

			notes = append(notes, model.FieldNote{
				ProjectID:      project.ID,
				NoteID:         g.shortID(),
				Date:           current,
				Author:         random.Choice(g.src, catalog.NoteAuthors),
				NoteType:       random.Choice(g.src, catalog.NoteTypes),
				Content:        content,
				PhotosAttached: g.src.IntBetween(0, 5),
				Weather:        random.Choice(g.src, []string{"Clear", "Cloudy", "Rain", "Hot", "Cold"}),
				TempHigh:       g.src.IntBetween(55, 100),
				TempLow:        g.src.IntBetween(35, 75),
			})
		}

		current = current.AddDate(0, 0, 1)
		day++
	}

	return notes
}

// fieldNoteContext samples a value for every placeholder the note templates
// use. All values are drawn regardless of which template was picked, which
// keeps the draw sequence independent of template choice.
func (g *Generator) fieldNoteContext(project model.Project) text.Context {
	return text.Context{
		"time":    random.Choice(g.src, []string{"0600", "0630", "0700"}),
		"weather": random.Choice(g.src, []string{"Clear, 72F", "Partly cloudy, 65F", "Rain - indoor work only", "Hot, 95F - heat protocol", "Cold, 35F"}),
		"crew_count": fmt.Sprintf("%d", g.src.IntBetween(4, 16)),
		"task": random.Choice(g.src, []string{
			"ductwork installation Floor 3", "piping rough-in mechanical room",
			"hanging VAV boxes wing B", "controls wiring", "insulation west side",
			"equipment rigging", "startup AHU-2", "TAB work zones 1-4",
		}),
		"observation": random.Choice(g.src, []string{
			"Good progress.", "Behind schedule due to material delay.",
			"Ahead of plan.", "Coordination issues with electrical - resolved on site.",
			"Waiting on RFI response to proceed.", "Inspection passed.",
		}),
		"safety_topic": random.Choice(g.src, []string{
			"ladder safety", "PPE requirements", "fall protection",
			"hot work permits", "lockout/tagout", "confined space entry",
		}),
		"work_description": random.Choice(g.src, []string{
			"Continued ductwork installation per plan.",
			"Completed piping pressure test - passed.",
			"Set 3 VAV boxes, awaiting controls.",
			"Ran refrigerant lines to condensers.",
		}),
		"material":     random.Choice(g.src, []string{"sheet metal", "copper piping", "VAV boxes", "RTU", "insulation"}),
		"qty":          fmt.Sprintf("%d", g.src.IntBetween(10, 200)),
		"receipt_note": random.Choice(g.src, []string{"Matched PO", "Short 2 boxes - claim filed", "All accounted for"}),
		"location":     random.Choice(g.src, []string{"laydown area A", "mechanical room", "loading dock", "floor 3 staging"}),
		"trade":        random.Choice(g.src, []string{"electrical", "plumbing", "fire protection", "drywall"}),
		"meeting_outcome": random.Choice(g.src, []string{
			"Agreed on sequence for ceiling close-in",
			"Resolved duct routing conflict",
			"Scheduled joint walkthrough Friday",
		}),
		"actions": random.Choice(g.src, []string{
			"HVAC to relocate diffuser 6 inches east",
			"FP to adjust sprinkler head locations",
			"Awaiting revised drawings",
		}),
		"topics": random.Choice(g.src, []string{
			"schedule recovery, material lead times, inspections",
			"safety incident review, upcoming inspections, manpower",
			"change orders, RFI backlog, coordination",
		}),
		"schedule_status": random.Choice(g.src, []string{"on track", "3 days behind", "ahead 2 days", "critical - recovery plan in place"}),
		"rfi_count":       fmt.Sprintf("%d", g.src.IntBetween(2, 15)),
		"qty2":            fmt.Sprintf("%d", g.src.IntBetween(5, 25)),
		"units":           random.Choice(g.src, []string{"VAV boxes", "diffusers", "LF of duct", "pipe hangers"}),
		"floor":           fmt.Sprintf("%d", g.src.IntBetween(1, project.Floors)),
		"quality_note":    random.Choice(g.src, []string{"Passed QC inspection", "Minor punch items noted", "Rework required grid C-4"}),
		"inspections":     random.Choice(g.src, []string{"rough-in Friday", "pressure test Monday", "none"}),
		"equipment":       random.Choice(g.src, []string{"RTU-1", "AHU-2", "Chiller", "Boiler", "FCU bank west"}),
		"startup_result": random.Choice(g.src, []string{
			"Successful - all parameters normal",
			"Minor vibration issue - balancing tomorrow",
			"Delayed - controls not ready",
		}),
		"punch_items": random.Choice(g.src, []string{"none", "3 minor items", "damper actuator adjustment", "sensor calibration"}),
		"issue_type":  random.Choice(g.src, []string{"Coordination conflict", "Material issue", "Design discrepancy", "Access issue"}),
		"issue_description": random.Choice(g.src, []string{
			"sprinkler head conflicts with diffuser at B-7",
			"wrong size fittings delivered",
			"field conditions don't match drawings",
			"ceiling access restricted by other trade",
		}),
		"resolution": random.Choice(g.src, []string{
			"RFI submitted", "Resolved on site with GC", "Awaiting engineer response", "Workaround implemented",
		}),
		"impact":       random.Choice(g.src, []string{"none", "1 day delay", "cost impact TBD", "schedule neutral"}),
		"work_zone":    random.Choice(g.src, []string{"Zone 3", "mechanical room", "penthouse", "basement", "floors 4-6"}),
		"progress_pct": fmt.Sprintf("%d", g.src.IntBetween(40, 95)),
		"remaining_work": random.Choice(g.src, []string{
			"diffusers and connections", "insulation and startup",
			"controls terminations", "final connections",
		}),
		"tab_system": random.Choice(g.src, []string{"VAV system floor 2", "AHU-1 supply", "FCU loop", "exhaust system"}),
		"readings": random.Choice(g.src, []string{
			"CFM within 5% of design", "static pressure high",
			"flow low on 3 boxes", "all zones balanced",
		}),
		"adjustments": random.Choice(g.src, []string{
			"sheave change AHU", "damper repositioning", "none required", "VFD reprogramming",
		}),
	}
}
