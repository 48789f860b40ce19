package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mechdata/hvac-dataset/internal/model"
)

// ExcelGenerator renders a dataset as a workbook with a summary sheet and
// one sheet per flat table.
type ExcelGenerator struct{}

func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

func (g *ExcelGenerator) Generate(ds model.Dataset) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, ds); err != nil {
		return nil, err
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"Contracts", contractHeader, contractRows(ds.Contracts)},
		{"SOV", sovHeader, sovRows(ds.SOV)},
		{"Labor Logs", laborHeader, laborRows(ds.LaborLogs)},
		{"Deliveries", deliveryHeader, deliveryRows(ds.Deliveries)},
		{"Change Orders", changeOrderHeader, changeOrderRows(ds.ChangeOrders)},
		{"RFIs", rfiHeader, rfiRows(ds.RFIs)},
		{"Billing Applications", billingHeader, billingRows(ds.BillingHistory)},
		{"Billing Line Items", billingLineHeader, billingLineRows(ds.BillingHistory)},
		{"Field Notes", fieldNoteHeader, fieldNoteRows(ds.FieldNotes)},
	}
	for _, sheet := range sheets {
		if _, err := file.NewSheet(sheet.name); err != nil {
			return nil, err
		}
		if err := g.writeTable(file, sheet.name, sheet.header, sheet.rows); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *ExcelGenerator) writeSummary(file *excelize.File, sheet string, ds model.Dataset) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	totalValue := 0.0
	for _, c := range ds.Contracts {
		totalValue += c.OriginalContractValue
	}

	set("A1", "Projects")
	set("B1", len(ds.Contracts))
	set("A2", "Total contract value")
	set("B2", totalValue)
	set("A3", "SOV lines")
	set("B3", len(ds.SOV))
	set("A4", "Labor log entries")
	set("B4", len(ds.LaborLogs))
	set("A5", "Material deliveries")
	set("B5", len(ds.Deliveries))
	set("A6", "Change orders")
	set("B6", len(ds.ChangeOrders))
	set("A7", "RFIs")
	set("B7", len(ds.RFIs))
	set("A8", "Field notes")
	set("B8", len(ds.FieldNotes))
	set("A9", "Billing applications")
	set("B9", len(ds.BillingHistory))

	tableRow := 11
	set(fmt.Sprintf("A%d", tableRow), "Project")
	set(fmt.Sprintf("B%d", tableRow), "Contract value")
	set(fmt.Sprintf("C%d", tableRow), "Contract date")
	for i, c := range ds.Contracts {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), c.ProjectName)
		set(fmt.Sprintf("B%d", row), c.OriginalContractValue)
		set(fmt.Sprintf("C%d", row), fmtDate(c.ContractDate))
	}

	_ = file.SetColWidth(sheet, "A", "A", 50)
	_ = file.SetColWidth(sheet, "B", "C", 18)
	return nil
}

func (g *ExcelGenerator) writeTable(file *excelize.File, sheet string, header []string, rows [][]string) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, title)
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			set(cell, value)
		}
	}

	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	_ = file.SetColWidth(sheet, "A", last, 16)
	return nil
}
