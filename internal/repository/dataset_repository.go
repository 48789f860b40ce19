package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mechdata/hvac-dataset/internal/model"
)

// DatasetRepository loads a generated dataset into Postgres. Inserts run in
// one transaction per dataset so a partial load never persists.
type DatasetRepository struct {
	db *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

func (r *DatasetRepository) SaveDataset(ctx context.Context, ds model.Dataset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range ds.Contracts {
			if err := tx.Exec(`
				INSERT INTO contracts (
					project_id, project_name, original_contract_value, contract_date,
					substantial_completion_date, retention_pct, payment_terms,
					gc_name, architect, engineer_of_record
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (project_id) DO NOTHING
			`, c.ProjectID, c.ProjectName, c.OriginalContractValue, c.ContractDate,
				c.SubstantialCompletionDate, c.RetentionPct, c.PaymentTerms,
				c.GCName, c.Architect, c.EngineerOfRecord).Error; err != nil {
				return err
			}
		}

		for _, l := range ds.SOV {
			if err := tx.Exec(`
				INSERT INTO sov_lines (
					sov_line_id, project_id, line_number, description,
					scheduled_value, labor_pct, material_pct
				) VALUES (?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (sov_line_id) DO NOTHING
			`, l.SOVLineID, l.ProjectID, l.LineNumber, l.Description,
				l.ScheduledValue, l.LaborPct, l.MaterialPct).Error; err != nil {
				return err
			}
		}

		for _, e := range ds.LaborLogs {
			if err := tx.Exec(`
				INSERT INTO labor_logs (
					log_id, project_id, sov_line_id, log_date, employee_id, role,
					hours_st, hours_ot, hourly_rate, burden_multiplier, work_area, cost_code
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, e.LogID, e.ProjectID, e.SOVLineID, e.Date, e.EmployeeID, e.Role,
				e.HoursST, e.HoursOT, e.HourlyRate, e.BurdenMultiplier, e.WorkArea, e.CostCode).Error; err != nil {
				return err
			}
		}

		for _, d := range ds.Deliveries {
			if err := tx.Exec(`
				INSERT INTO material_deliveries (
					delivery_id, project_id, sov_line_id, delivery_date, material_category,
					item_description, quantity, unit, unit_cost, total_cost,
					po_number, vendor, received_by, condition_notes
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, d.DeliveryID, d.ProjectID, d.SOVLineID, d.Date, d.MaterialCategory,
				d.ItemDescription, d.Quantity, d.Unit, d.UnitCost, d.TotalCost,
				d.PONumber, d.Vendor, d.ReceivedBy, d.ConditionNotes).Error; err != nil {
				return err
			}
		}

		for _, co := range ds.ChangeOrders {
			if err := tx.Exec(`
				INSERT INTO change_orders (
					project_id, co_number, date_submitted, reason_category, description,
					amount, status, related_rfi, affected_sov_lines,
					labor_hours_impact, schedule_impact_days, submitted_by, approved_by
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, co.ProjectID, co.CONumber, co.DateSubmitted, co.ReasonCategory, co.Description,
				co.Amount, string(co.Status), co.RelatedRFI, strings.Join(co.AffectedSOVLines, ";"),
				co.LaborHoursImpact, co.ScheduleImpactDays, co.SubmittedBy, co.ApprovedBy).Error; err != nil {
				return err
			}
		}

		for _, rfi := range ds.RFIs {
			if err := tx.Exec(`
				INSERT INTO rfis (
					project_id, rfi_number, date_submitted, subject, submitted_by,
					assigned_to, priority, status, date_required, date_responded,
					response_summary, cost_impact, schedule_impact
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, rfi.ProjectID, rfi.RFINumber, rfi.DateSubmitted, rfi.Subject, rfi.SubmittedBy,
				rfi.AssignedTo, rfi.Priority, string(rfi.Status), rfi.DateRequired, rfi.DateResponded,
				rfi.ResponseSummary, rfi.CostImpact, rfi.ScheduleImpact).Error; err != nil {
				return err
			}
		}

		for _, n := range ds.FieldNotes {
			if err := tx.Exec(`
				INSERT INTO field_notes (
					note_id, project_id, note_date, author, note_type, content,
					photos_attached, weather, temp_high, temp_low
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, n.NoteID, n.ProjectID, n.Date, n.Author, n.NoteType, n.Content,
				n.PhotosAttached, n.Weather, n.TempHigh, n.TempLow).Error; err != nil {
				return err
			}
		}

		for _, app := range ds.BillingHistory {
			if err := r.saveApplication(tx, app); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *DatasetRepository) saveApplication(tx *gorm.DB, app model.BillingApplication) error {
	if err := tx.Exec(`
		INSERT INTO billing_applications (
			project_id, application_number, period_end, period_total,
			cumulative_billed, retention_held, net_payment_due, status, payment_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, app.ProjectID, app.ApplicationNumber, app.PeriodEnd, app.PeriodTotal,
		app.CumulativeBilled, app.RetentionHeld, app.NetPaymentDue,
		string(app.Status), app.PaymentDate).Error; err != nil {
		return err
	}

	for _, item := range app.LineItems {
		if err := tx.Exec(`
			INSERT INTO billing_line_items (
				project_id, application_number, sov_line_id, description,
				scheduled_value, previous_billed, this_period, total_billed,
				pct_complete, balance_to_finish
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, app.ProjectID, app.ApplicationNumber, item.SOVLineID, item.Description,
			item.ScheduledValue, item.PreviousBilled, item.ThisPeriod, item.TotalBilled,
			item.PctComplete, item.BalanceToFinish).Error; err != nil {
			return err
		}
	}
	return nil
}
