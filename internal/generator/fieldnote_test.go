package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mechdata/hvac-dataset/internal/model"
)

func TestFieldNotesCoverMostWorkDays(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(12, model.ComplexityMedium)

	g := newTestGenerator(42)
	notes := g.generateFieldNotes(project, start)

	workDays := project.DurationMonths * workDaysPerMonth
	require.Greater(t, len(notes), workDays/2, "note coverage well below the 70%% target")
	require.LessOrEqual(t, len(notes), workDays)
}

func TestFieldNoteContentIsRendered(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(6, model.ComplexityLow)

	g := newTestGenerator(42)
	for _, note := range g.generateFieldNotes(project, start) {
		require.Equal(t, project.ID, note.ProjectID)
		require.Len(t, note.NoteID, 8)
		require.NotEmpty(t, note.Content)
		require.NotContains(t, note.Content, "{", "unrendered placeholder in %q", note.Content)
		require.NotEmpty(t, note.Author)
		require.NotEmpty(t, note.NoteType)
		require.GreaterOrEqual(t, note.PhotosAttached, 0)
		require.LessOrEqual(t, note.PhotosAttached, 5)

		wd := note.Date.Weekday()
		require.NotEqual(t, time.Saturday, wd)
		require.NotEqual(t, time.Sunday, wd)
	}
}

func TestBidEstimateDerivesFromSOV(t *testing.T) {
	project := testProject(12, model.ComplexityMedium)

	g := newTestGenerator(42)
	lines := g.allocateSOV(project, 2000000)
	bid := g.generateBidEstimate(project, 2000000, lines)

	require.Equal(t, project.ID, bid.ProjectID)
	require.Equal(t, 2000000.0, bid.BidAmount)
	require.NotEmpty(t, bid.Estimator)

	laborBudget := 0.0
	for _, line := range lines {
		laborBudget += line.LaborBudget()
	}
	require.InDelta(t, laborBudget/blendedLaborRate, float64(bid.Labor.TotalHoursEstimated), 1.0)
	require.Equal(t, blendedLaborRate, bid.Labor.BlendedLaborRate)

	require.Equal(t, project.DurationMonths, bid.GeneralConds.ProjectManagementMonths)
	require.InDelta(t, 2000000*0.045, bid.Subs.InsulationSub.Quote, 0.01)
	require.InDelta(t, 2000000*0.025, bid.Subs.TABSub.Quote, 0.01)
	require.InDelta(t, 2000000*0.08, bid.Subs.ControlsSub.Quote, 0.01)
	require.Len(t, bid.Material.KeyMaterialQuotes, 3)
	require.NotEmpty(t, bid.KeyAssumptions)
	require.NotEmpty(t, bid.Exclusions)
	require.NotEmpty(t, bid.Clarifications)
}
