package model

import "time"

// OvertimeFactor is the premium multiplier applied to overtime hours when
// costing a labor entry.
const OvertimeFactor = 1.5

// LaborLogEntry is one worker-day charged against an SOV line. Labor volume
// is informational: it is not capped against the line's labor budget.
type LaborLogEntry struct {
	ProjectID        string    `json:"project_id"`
	LogID            string    `json:"log_id"`
	Date             time.Time `json:"date"`
	EmployeeID       string    `json:"employee_id"`
	Role             string    `json:"role"`
	SOVLineID        string    `json:"sov_line_id"`
	HoursST          float64   `json:"hours_st"`
	HoursOT          float64   `json:"hours_ot"`
	HourlyRate       float64   `json:"hourly_rate"`
	BurdenMultiplier float64   `json:"burden_multiplier"`
	WorkArea         string    `json:"work_area"`
	CostCode         int       `json:"cost_code"`
}

// BurdenedCost is the fully burdened cost of the entry.
func (e LaborLogEntry) BurdenedCost() float64 {
	return (e.HoursST + e.HoursOT*OvertimeFactor) * e.HourlyRate * e.BurdenMultiplier
}
