package model

// SOVLine is one schedule-of-values line item. LineNumber doubles as the
// phase key used by the labor, delivery and billing generators.
type SOVLine struct {
	ProjectID      string  `json:"project_id"`
	SOVLineID      string  `json:"sov_line_id"`
	LineNumber     int     `json:"line_number"`
	Description    string  `json:"description"`
	ScheduledValue float64 `json:"scheduled_value"`
	LaborPct       float64 `json:"labor_pct"`
	MaterialPct    float64 `json:"material_pct"`
}

// LaborBudget is the share of the scheduled value attributed to labor.
func (l SOVLine) LaborBudget() float64 {
	return l.ScheduledValue * l.LaborPct
}

// MaterialBudget is the share of the scheduled value attributed to material.
// Deliveries tied to this line sum to it.
func (l SOVLine) MaterialBudget() float64 {
	return l.ScheduledValue * l.MaterialPct
}
