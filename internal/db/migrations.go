package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS contracts (
		project_id VARCHAR(32) PRIMARY KEY,
		project_name TEXT NOT NULL,
		original_contract_value NUMERIC(18,2) NOT NULL,
		contract_date DATE NOT NULL,
		substantial_completion_date DATE NOT NULL,
		retention_pct NUMERIC(5,4) NOT NULL,
		payment_terms VARCHAR(32) NOT NULL,
		gc_name TEXT NOT NULL,
		architect TEXT NOT NULL,
		engineer_of_record TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS sov_lines (
		sov_line_id VARCHAR(64) PRIMARY KEY,
		project_id VARCHAR(32) NOT NULL REFERENCES contracts(project_id),
		line_number INT NOT NULL,
		description TEXT NOT NULL,
		scheduled_value NUMERIC(18,2) NOT NULL,
		labor_pct NUMERIC(6,5) NOT NULL,
		material_pct NUMERIC(6,5) NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_sov_lines_project ON sov_lines (project_id);`,
	`CREATE TABLE IF NOT EXISTS labor_logs (
		log_id VARCHAR(16) PRIMARY KEY,
		project_id VARCHAR(32) NOT NULL REFERENCES contracts(project_id),
		sov_line_id VARCHAR(64) NOT NULL REFERENCES sov_lines(sov_line_id),
		log_date DATE NOT NULL,
		employee_id VARCHAR(16) NOT NULL,
		role TEXT NOT NULL,
		hours_st NUMERIC(6,2) NOT NULL,
		hours_ot NUMERIC(6,2) NOT NULL,
		hourly_rate NUMERIC(8,2) NOT NULL,
		burden_multiplier NUMERIC(5,3) NOT NULL,
		work_area TEXT NOT NULL,
		cost_code INT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_labor_logs_project ON labor_logs (project_id);`,
	`CREATE TABLE IF NOT EXISTS material_deliveries (
		delivery_id VARCHAR(32) PRIMARY KEY,
		project_id VARCHAR(32) NOT NULL REFERENCES contracts(project_id),
		sov_line_id VARCHAR(64) NOT NULL REFERENCES sov_lines(sov_line_id),
		delivery_date DATE NOT NULL,
		material_category TEXT NOT NULL,
		item_description TEXT NOT NULL,
		quantity INT NOT NULL,
		unit VARCHAR(8) NOT NULL,
		unit_cost NUMERIC(18,2) NOT NULL,
		total_cost NUMERIC(18,2) NOT NULL,
		po_number VARCHAR(16) NOT NULL,
		vendor TEXT NOT NULL,
		received_by TEXT NOT NULL,
		condition_notes TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_deliveries_project ON material_deliveries (project_id);`,
	`CREATE TABLE IF NOT EXISTS change_orders (
		project_id VARCHAR(32) NOT NULL REFERENCES contracts(project_id),
		co_number VARCHAR(16) NOT NULL,
		date_submitted DATE NOT NULL,
		reason_category TEXT NOT NULL,
		description TEXT NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		status VARCHAR(32) NOT NULL,
		related_rfi VARCHAR(16),
		affected_sov_lines TEXT NOT NULL,
		labor_hours_impact INT NOT NULL,
		schedule_impact_days INT NOT NULL,
		submitted_by TEXT NOT NULL,
		approved_by TEXT,
		PRIMARY KEY (project_id, co_number)
	);`,
	`CREATE TABLE IF NOT EXISTS rfis (
		project_id VARCHAR(32) NOT NULL REFERENCES contracts(project_id),
		rfi_number VARCHAR(16) NOT NULL,
		date_submitted DATE NOT NULL,
		subject TEXT NOT NULL,
		submitted_by TEXT NOT NULL,
		assigned_to TEXT NOT NULL,
		priority VARCHAR(16) NOT NULL,
		status VARCHAR(32) NOT NULL,
		date_required DATE NOT NULL,
		date_responded DATE,
		response_summary TEXT,
		cost_impact BOOLEAN NOT NULL,
		schedule_impact BOOLEAN NOT NULL,
		PRIMARY KEY (project_id, rfi_number)
	);`,
	`CREATE TABLE IF NOT EXISTS field_notes (
		note_id VARCHAR(16) PRIMARY KEY,
		project_id VARCHAR(32) NOT NULL REFERENCES contracts(project_id),
		note_date DATE NOT NULL,
		author TEXT NOT NULL,
		note_type VARCHAR(32) NOT NULL,
		content TEXT NOT NULL,
		photos_attached INT NOT NULL,
		weather VARCHAR(16) NOT NULL,
		temp_high INT NOT NULL,
		temp_low INT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS billing_applications (
		project_id VARCHAR(32) NOT NULL REFERENCES contracts(project_id),
		application_number INT NOT NULL,
		period_end DATE NOT NULL,
		period_total NUMERIC(18,2) NOT NULL,
		cumulative_billed NUMERIC(18,2) NOT NULL,
		retention_held NUMERIC(18,2) NOT NULL,
		net_payment_due NUMERIC(18,2) NOT NULL,
		status VARCHAR(16) NOT NULL,
		payment_date DATE,
		PRIMARY KEY (project_id, application_number)
	);`,
	`CREATE TABLE IF NOT EXISTS billing_line_items (
		project_id VARCHAR(32) NOT NULL,
		application_number INT NOT NULL,
		sov_line_id VARCHAR(64) NOT NULL REFERENCES sov_lines(sov_line_id),
		description TEXT NOT NULL,
		scheduled_value NUMERIC(18,2) NOT NULL,
		previous_billed NUMERIC(18,2) NOT NULL,
		this_period NUMERIC(18,2) NOT NULL,
		total_billed NUMERIC(18,2) NOT NULL,
		pct_complete NUMERIC(5,1) NOT NULL,
		balance_to_finish NUMERIC(18,2) NOT NULL,
		PRIMARY KEY (project_id, application_number, sov_line_id),
		FOREIGN KEY (project_id, application_number)
			REFERENCES billing_applications (project_id, application_number) ON DELETE CASCADE
	);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
