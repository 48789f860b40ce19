package model

import "time"

type BillingStatus string

const (
	BillingPaid     BillingStatus = "Paid"
	BillingPending  BillingStatus = "Pending"
	BillingApproved BillingStatus = "Approved"
)

// BillingLineItem is the cumulative billing position of one SOV line within
// one application. TotalBilled never exceeds ScheduledValue.
type BillingLineItem struct {
	SOVLineID       string  `json:"sov_line_id"`
	Description     string  `json:"description"`
	ScheduledValue  float64 `json:"scheduled_value"`
	PreviousBilled  float64 `json:"previous_billed"`
	ThisPeriod      float64 `json:"this_period"`
	TotalBilled     float64 `json:"total_billed"`
	PctComplete     float64 `json:"pct_complete"`
	BalanceToFinish float64 `json:"balance_to_finish"`
}

// BillingApplication is one monthly draw. CumulativeBilled is non-decreasing
// across application numbers and never exceeds the SOV total.
type BillingApplication struct {
	ProjectID         string            `json:"project_id"`
	ApplicationNumber int               `json:"application_number"`
	PeriodEnd         time.Time         `json:"period_end"`
	PeriodTotal       float64           `json:"period_total"`
	CumulativeBilled  float64           `json:"cumulative_billed"`
	RetentionHeld     float64           `json:"retention_held"`
	NetPaymentDue     float64           `json:"net_payment_due"`
	Status            BillingStatus     `json:"status"`
	PaymentDate       *time.Time        `json:"payment_date"`
	LineItems         []BillingLineItem `json:"line_items"`
}
