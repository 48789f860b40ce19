package model

import "time"

type RFIStatus string

const (
	RFIOpen            RFIStatus = "Open"
	RFIPendingResponse RFIStatus = "Pending Response"
	RFIClosed          RFIStatus = "Closed"
)

// RFI is a tracked field question. DateResponded is set iff the status is
// Closed.
type RFI struct {
	ProjectID       string     `json:"project_id"`
	RFINumber       string     `json:"rfi_number"`
	DateSubmitted   time.Time  `json:"date_submitted"`
	Subject         string     `json:"subject"`
	SubmittedBy     string     `json:"submitted_by"`
	AssignedTo      string     `json:"assigned_to"`
	Priority        string     `json:"priority"`
	Status          RFIStatus  `json:"status"`
	DateRequired    time.Time  `json:"date_required"`
	DateResponded   *time.Time `json:"date_responded"`
	ResponseSummary *string    `json:"response_summary"`
	CostImpact      bool       `json:"cost_impact"`
	ScheduleImpact  bool       `json:"schedule_impact"`
}
