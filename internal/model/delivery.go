package model

import "time"

// Delivery is one material receipt against an SOV line. The total costs of
// all deliveries for a line sum to that line's material budget.
type Delivery struct {
	ProjectID        string    `json:"project_id"`
	DeliveryID       string    `json:"delivery_id"`
	Date             time.Time `json:"date"`
	SOVLineID        string    `json:"sov_line_id"`
	MaterialCategory string    `json:"material_category"`
	ItemDescription  string    `json:"item_description"`
	Quantity         int       `json:"quantity"`
	Unit             string    `json:"unit"`
	UnitCost         float64   `json:"unit_cost"`
	TotalCost        float64   `json:"total_cost"`
	PONumber         string    `json:"po_number"`
	Vendor           string    `json:"vendor"`
	ReceivedBy       string    `json:"received_by"`
	ConditionNotes   string    `json:"condition_notes"`
}
