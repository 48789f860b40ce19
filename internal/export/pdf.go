package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mechdata/hvac-dataset/internal/model"
)

// PDFGenerator renders a project's progress billing as a pay application
// document, one page per application with its SOV continuation table.
type PDFGenerator struct {
	fontName string
}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{fontName: "Helvetica"}
}

func (g *PDFGenerator) Generate(ds model.ProjectDataset) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)

	for _, app := range ds.BillingHistory {
		g.writeApplication(pdf, ds.Contract, app)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *PDFGenerator) writeApplication(pdf *gofpdf.Fpdf, contract model.Contract, app model.BillingApplication) {
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Application and Certificate for Payment", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Application No. %d - Period ending %s", app.ApplicationNumber, formatPDFDate(app.PeriodEnd)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Project: %s (%s)", contract.ProjectName, contract.ProjectID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Contract dated %s - Original contract value %s", formatPDFDate(contract.ContractDate), formatCurrency(contract.OriginalContractValue)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 10)
	headers := []string{"SOV Line", "Description", "Scheduled Value", "Previous", "This Period", "Total Billed", "%", "Balance"}
	widths := []float64{34, 78, 28, 26, 26, 28, 14, 28}
	g.drawRow(pdf, headers, widths, true)

	pdf.SetFont(g.fontName, "", 9)
	for _, item := range app.LineItems {
		row := []string{
			item.SOVLineID,
			item.Description,
			formatCurrency(item.ScheduledValue),
			formatCurrency(item.PreviousBilled),
			formatCurrency(item.ThisPeriod),
			formatCurrency(item.TotalBilled),
			fmt.Sprintf("%.1f", item.PctComplete),
			formatCurrency(item.BalanceToFinish),
		}
		g.drawRow(pdf, row, widths, false)
	}

	pdf.Ln(3)
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total this period: %s", formatCurrency(app.PeriodTotal)), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total billed to date: %s", formatCurrency(app.CumulativeBilled)), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Retention held (10%%): %s", formatCurrency(app.RetentionHeld)), "", 1, "R", false, 0, "")

	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Net payment due: %s", formatCurrency(app.NetPaymentDue)), "", 1, "R", false, 0, "")
}

func (g *PDFGenerator) drawRow(pdf *gofpdf.Fpdf, cells []string, widths []float64, header bool) {
	height := 6.0
	fill := header
	if header {
		pdf.SetFillColor(230, 230, 230)
	}
	for i, cell := range cells {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], height, cell, "1", 0, align, fill, 0, "")
	}
	pdf.Ln(-1)
}

func formatPDFDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := fmt.Sprintf("%.2f", v)
	dot := len(whole) - 3
	intPart := whole[:dot]

	var out []byte
	for i, digit := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}
	return sign + "$" + string(out) + whole[dot:]
}
