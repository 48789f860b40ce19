package model

import "time"

type ChangeOrderStatus string

const (
	ChangeOrderPending     ChangeOrderStatus = "Pending"
	ChangeOrderUnderReview ChangeOrderStatus = "Under Review"
	ChangeOrderApproved    ChangeOrderStatus = "Approved"
	ChangeOrderRejected    ChangeOrderStatus = "Rejected"
)

// ChangeOrder is a contract modification. Amount is signed: value-engineering
// credits are negative.
type ChangeOrder struct {
	ProjectID          string            `json:"project_id"`
	CONumber           string            `json:"co_number"`
	DateSubmitted      time.Time         `json:"date_submitted"`
	ReasonCategory     string            `json:"reason_category"`
	Description        string            `json:"description"`
	Amount             float64           `json:"amount"`
	Status             ChangeOrderStatus `json:"status"`
	RelatedRFI         *string           `json:"related_rfi"`
	AffectedSOVLines   []string          `json:"affected_sov_lines"`
	LaborHoursImpact   int               `json:"labor_hours_impact"`
	ScheduleImpactDays int               `json:"schedule_impact_days"`
	SubmittedBy        string            `json:"submitted_by"`
	ApprovedBy         *string           `json:"approved_by"`
}
