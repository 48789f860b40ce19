package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/model"
)

func laborFixture(t *testing.T, seed int64, complexity model.Complexity) (model.Project, []model.SOVLine, []model.LaborLogEntry) {
	t.Helper()

	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	project := testProject(12, complexity)

	g := newTestGenerator(seed)
	lines := g.allocateSOV(project, 2000000)
	return project, lines, g.generateLaborLogs(project, lines, start)
}

func TestLaborLogsSkipWeekends(t *testing.T) {
	_, _, logs := laborFixture(t, 42, model.ComplexityMedium)
	require.NotEmpty(t, logs)

	for _, entry := range logs {
		wd := entry.Date.Weekday()
		require.NotEqual(t, time.Saturday, wd)
		require.NotEqual(t, time.Sunday, wd)
	}
}

func TestLaborHoursPatterns(t *testing.T) {
	_, _, logs := laborFixture(t, 42, model.ComplexityHigh)

	var overtime int
	for _, entry := range logs {
		if entry.HoursOT > 0 {
			overtime++
			require.Equal(t, 8.0, entry.HoursST)
			require.Contains(t, []float64{2, 4}, entry.HoursOT)
		} else {
			require.Contains(t, []float64{4, 6, 8, 10}, entry.HoursST)
		}
	}
	require.NotZero(t, overtime, "no overtime entries in a full project")
}

func TestLaborCostCodeMatchesAssignedLine(t *testing.T) {
	_, lines, logs := laborFixture(t, 42, model.ComplexityMedium)

	lineNumbers := map[string]int{}
	for _, line := range lines {
		lineNumbers[line.SOVLineID] = line.LineNumber
	}

	for _, entry := range logs {
		require.Equal(t, lineNumbers[entry.SOVLineID], entry.CostCode)
	}
}

func TestLaborRatesComeFromCrewCatalog(t *testing.T) {
	_, _, logs := laborFixture(t, 42, model.ComplexityMedium)

	rates := map[string]catalog.CrewRole{}
	for _, role := range catalog.CrewRoles {
		rates[role.Role] = role
	}

	for _, entry := range logs {
		role, ok := rates[entry.Role]
		require.True(t, ok, "unknown role %q", entry.Role)
		require.Equal(t, role.HourlyRate, entry.HourlyRate)
		require.Equal(t, role.BurdenRate, entry.BurdenMultiplier)
	}
}

func TestLaborPhasedLineAssignment(t *testing.T) {
	active := activeSOVLines(sampleLines(), 0.05)
	require.Equal(t, []int{1, 2}, lineNumbersOf(active))

	active = activeSOVLines(sampleLines(), 0.50)
	require.Equal(t, []int{1, 3, 4, 5, 6, 7, 8, 9}, lineNumbersOf(active))

	active = activeSOVLines(sampleLines(), 0.95)
	require.Equal(t, []int{1, 11, 13, 14, 15}, lineNumbersOf(active))
}

func TestBurdenedCost(t *testing.T) {
	entry := model.LaborLogEntry{
		HoursST:          8,
		HoursOT:          2,
		HourlyRate:       72.00,
		BurdenMultiplier: 1.42,
	}
	// 8 + 2*1.5 = 11 equivalent hours.
	require.InDelta(t, 11*72.00*1.42, entry.BurdenedCost(), 1e-9)
}

func sampleLines() []model.SOVLine {
	lines := make([]model.SOVLine, len(catalog.SOVTemplate))
	for i, item := range catalog.SOVTemplate {
		lines[i] = model.SOVLine{LineNumber: i + 1, Description: item.Description}
	}
	return lines
}

func lineNumbersOf(lines []model.SOVLine) []int {
	out := make([]int, len(lines))
	for i, line := range lines {
		out[i] = line.LineNumber
	}
	return out
}
