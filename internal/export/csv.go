package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mechdata/hvac-dataset/internal/model"
)

// WriteCSVs emits one CSV per flat table into dir. The nested billing
// structure is flattened into an applications table (with a line item count)
// and a separate line items table carrying project_id and
// application_number as foreign keys.
func WriteCSVs(ds model.Dataset, dir string) error {
	tables := []struct {
		name   string
		header []string
		rows   func() [][]string
	}{
		{"contracts", contractHeader, func() [][]string { return contractRows(ds.Contracts) }},
		{"sov", sovHeader, func() [][]string { return sovRows(ds.SOV) }},
		{"labor_logs", laborHeader, func() [][]string { return laborRows(ds.LaborLogs) }},
		{"material_deliveries", deliveryHeader, func() [][]string { return deliveryRows(ds.Deliveries) }},
		{"change_orders", changeOrderHeader, func() [][]string { return changeOrderRows(ds.ChangeOrders) }},
		{"rfis", rfiHeader, func() [][]string { return rfiRows(ds.RFIs) }},
		{"field_notes", fieldNoteHeader, func() [][]string { return fieldNoteRows(ds.FieldNotes) }},
		{"billing_history", billingHeader, func() [][]string { return billingRows(ds.BillingHistory) }},
		{"billing_line_items", billingLineHeader, func() [][]string { return billingLineRows(ds.BillingHistory) }},
	}

	for _, table := range tables {
		path := filepath.Join(dir, table.name+".csv")
		if err := writeCSV(path, table.header, table.rows()); err != nil {
			return fmt.Errorf("write %s: %w", table.name, err)
		}
	}
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmtDate(*t)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fmtStrPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var contractHeader = []string{
	"project_id", "project_name", "original_contract_value", "contract_date",
	"substantial_completion_date", "retention_pct", "payment_terms",
	"gc_name", "architect", "engineer_of_record",
}

func contractRows(contracts []model.Contract) [][]string {
	rows := make([][]string, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, []string{
			c.ProjectID, c.ProjectName, fmtFloat(c.OriginalContractValue),
			fmtDate(c.ContractDate), fmtDate(c.SubstantialCompletionDate),
			fmtFloat(c.RetentionPct), c.PaymentTerms,
			c.GCName, c.Architect, c.EngineerOfRecord,
		})
	}
	return rows
}

var sovHeader = []string{
	"project_id", "sov_line_id", "line_number", "description",
	"scheduled_value", "labor_pct", "material_pct",
}

func sovRows(lines []model.SOVLine) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.ProjectID, l.SOVLineID, strconv.Itoa(l.LineNumber), l.Description,
			fmtFloat(l.ScheduledValue), fmtFloat(l.LaborPct), fmtFloat(l.MaterialPct),
		})
	}
	return rows
}

var laborHeader = []string{
	"project_id", "log_id", "date", "employee_id", "role", "sov_line_id",
	"hours_st", "hours_ot", "hourly_rate", "burden_multiplier", "work_area", "cost_code",
}

func laborRows(entries []model.LaborLogEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ProjectID, e.LogID, fmtDate(e.Date), e.EmployeeID, e.Role, e.SOVLineID,
			fmtFloat(e.HoursST), fmtFloat(e.HoursOT), fmtFloat(e.HourlyRate),
			fmtFloat(e.BurdenMultiplier), e.WorkArea, strconv.Itoa(e.CostCode),
		})
	}
	return rows
}

var deliveryHeader = []string{
	"project_id", "delivery_id", "date", "sov_line_id", "material_category",
	"item_description", "quantity", "unit", "unit_cost", "total_cost",
	"po_number", "vendor", "received_by", "condition_notes",
}

func deliveryRows(deliveries []model.Delivery) [][]string {
	rows := make([][]string, 0, len(deliveries))
	for _, d := range deliveries {
		rows = append(rows, []string{
			d.ProjectID, d.DeliveryID, fmtDate(d.Date), d.SOVLineID, d.MaterialCategory,
			d.ItemDescription, strconv.Itoa(d.Quantity), d.Unit,
			fmtFloat(d.UnitCost), fmtFloat(d.TotalCost),
			d.PONumber, d.Vendor, d.ReceivedBy, d.ConditionNotes,
		})
	}
	return rows
}

var changeOrderHeader = []string{
	"project_id", "co_number", "date_submitted", "reason_category", "description",
	"amount", "status", "related_rfi", "affected_sov_lines",
	"labor_hours_impact", "schedule_impact_days", "submitted_by", "approved_by",
}

func changeOrderRows(orders []model.ChangeOrder) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, co := range orders {
		rows = append(rows, []string{
			co.ProjectID, co.CONumber, fmtDate(co.DateSubmitted), co.ReasonCategory, co.Description,
			fmtFloat(co.Amount), string(co.Status), fmtStrPtr(co.RelatedRFI),
			strings.Join(co.AffectedSOVLines, ";"),
			strconv.Itoa(co.LaborHoursImpact), strconv.Itoa(co.ScheduleImpactDays),
			co.SubmittedBy, fmtStrPtr(co.ApprovedBy),
		})
	}
	return rows
}

var rfiHeader = []string{
	"project_id", "rfi_number", "date_submitted", "subject", "submitted_by",
	"assigned_to", "priority", "status", "date_required", "date_responded",
	"response_summary", "cost_impact", "schedule_impact",
}

func rfiRows(rfis []model.RFI) [][]string {
	rows := make([][]string, 0, len(rfis))
	for _, r := range rfis {
		rows = append(rows, []string{
			r.ProjectID, r.RFINumber, fmtDate(r.DateSubmitted), r.Subject, r.SubmittedBy,
			r.AssignedTo, r.Priority, string(r.Status), fmtDate(r.DateRequired),
			fmtDatePtr(r.DateResponded), fmtStrPtr(r.ResponseSummary),
			strconv.FormatBool(r.CostImpact), strconv.FormatBool(r.ScheduleImpact),
		})
	}
	return rows
}

var fieldNoteHeader = []string{
	"project_id", "note_id", "date", "author", "note_type", "content",
	"photos_attached", "weather", "temp_high", "temp_low",
}

func fieldNoteRows(notes []model.FieldNote) [][]string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{
			n.ProjectID, n.NoteID, fmtDate(n.Date), n.Author, n.NoteType, n.Content,
			strconv.Itoa(n.PhotosAttached), n.Weather,
			strconv.Itoa(n.TempHigh), strconv.Itoa(n.TempLow),
		})
	}
	return rows
}

var billingHeader = []string{
	"project_id", "application_number", "period_end", "period_total",
	"cumulative_billed", "retention_held", "net_payment_due", "status",
	"payment_date", "line_item_count",
}

func billingRows(apps []model.BillingApplication) [][]string {
	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, []string{
			app.ProjectID, strconv.Itoa(app.ApplicationNumber), fmtDate(app.PeriodEnd),
			fmtFloat(app.PeriodTotal), fmtFloat(app.CumulativeBilled),
			fmtFloat(app.RetentionHeld), fmtFloat(app.NetPaymentDue),
			string(app.Status), fmtDatePtr(app.PaymentDate),
			strconv.Itoa(len(app.LineItems)),
		})
	}
	return rows
}

var billingLineHeader = []string{
	"project_id", "application_number", "sov_line_id", "description",
	"scheduled_value", "previous_billed", "this_period", "total_billed",
	"pct_complete", "balance_to_finish",
}

func billingLineRows(apps []model.BillingApplication) [][]string {
	var rows [][]string
	for _, app := range apps {
		for _, item := range app.LineItems {
			rows = append(rows, []string{
				app.ProjectID, strconv.Itoa(app.ApplicationNumber), item.SOVLineID, item.Description,
				fmtFloat(item.ScheduledValue), fmtFloat(item.PreviousBilled),
				fmtFloat(item.ThisPeriod), fmtFloat(item.TotalBilled),
				fmtFloat(item.PctComplete), fmtFloat(item.BalanceToFinish),
			})
		}
	}
	return rows
}
