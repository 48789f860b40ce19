package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mechdata/hvac-dataset/internal/generator"
	"github.com/mechdata/hvac-dataset/internal/model"
)

func exportFixture(t *testing.T) model.Dataset {
	t.Helper()

	asOf := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	g := generator.New(42, asOf, zerolog.Nop())
	return g.GenerateAll([]model.Project{{
		ID:             "PRJ-2024-301",
		Name:           "Export Test Project",
		Type:           model.ProjectTypeEducation,
		Location:       "Austin, TX",
		SqFt:           50000,
		Floors:         2,
		DurationMonths: 6,
		Complexity:     model.ComplexityLow,
	}})
}

func TestWriteCSVsEmitsEveryTable(t *testing.T) {
	ds := exportFixture(t)
	dir := t.TempDir()

	require.NoError(t, WriteCSVs(ds, dir))

	expected := map[string][]string{
		"contracts.csv":           contractHeader,
		"sov.csv":                 sovHeader,
		"labor_logs.csv":          laborHeader,
		"material_deliveries.csv": deliveryHeader,
		"change_orders.csv":       changeOrderHeader,
		"rfis.csv":                rfiHeader,
		"field_notes.csv":         fieldNoteHeader,
		"billing_history.csv":     billingHeader,
		"billing_line_items.csv":  billingLineHeader,
	}

	for name, header := range expected {
		file, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err, name)

		records, err := csv.NewReader(file).ReadAll()
		require.NoError(t, file.Close())
		require.NoError(t, err, name)
		require.NotEmpty(t, records, name)
		require.Equal(t, header, records[0], "%s header mismatch", name)
		require.Greater(t, len(records), 1, "%s has no data rows", name)
	}
}

func TestCSVRowCountsMatchDataset(t *testing.T) {
	ds := exportFixture(t)
	dir := t.TempDir()

	require.NoError(t, WriteCSVs(ds, dir))

	file, err := os.Open(filepath.Join(dir, "sov.csv"))
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(ds.SOV)+1)
}

func TestWriteJSONRoundTrips(t *testing.T) {
	ds := exportFixture(t)
	path := filepath.Join(t.TempDir(), "dataset.json")

	require.NoError(t, WriteJSON(ds, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded model.Dataset
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Contracts, len(ds.Contracts))
	require.Len(t, decoded.SOV, len(ds.SOV))
	require.Len(t, decoded.BillingHistory, len(ds.BillingHistory))
	require.Len(t, decoded.BidEstimates, len(ds.BidEstimates))
}

func TestExcelWorkbookSheets(t *testing.T) {
	ds := exportFixture(t)

	content, err := NewExcelGenerator().Generate(ds)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	for _, name := range []string{
		"Summary", "Contracts", "SOV", "Labor Logs", "Deliveries",
		"Change Orders", "RFIs", "Billing Applications", "Billing Line Items", "Field Notes",
	} {
		require.Contains(t, sheets, name)
	}

	value, err := file.GetCellValue("Contracts", "A2")
	require.NoError(t, err)
	require.Equal(t, ds.Contracts[0].ProjectID, value)
}

func TestPDFGeneratorProducesDocument(t *testing.T) {
	asOf := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	g := generator.New(42, asOf, zerolog.Nop())
	ds := g.GenerateProject(model.Project{
		ID:             "PRJ-2024-302",
		Name:           "PDF Test Project",
		Type:           model.ProjectTypeEducation,
		Location:       "Austin, TX",
		SqFt:           50000,
		Floors:         2,
		DurationMonths: 6,
		Complexity:     model.ComplexityLow,
	})

	content, err := NewPDFGenerator().Generate(ds)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(content, []byte("%PDF")), "output is not a PDF document")
}
