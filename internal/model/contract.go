package model

import "time"

// Contract holds the executed contract for a project. OriginalContractValue
// is the conservation anchor: SOV lines must sum to it exactly.
type Contract struct {
	ProjectID                 string    `json:"project_id"`
	ProjectName               string    `json:"project_name"`
	OriginalContractValue     float64   `json:"original_contract_value"`
	ContractDate              time.Time `json:"contract_date"`
	SubstantialCompletionDate time.Time `json:"substantial_completion_date"`
	RetentionPct              float64   `json:"retention_pct"`
	PaymentTerms              string    `json:"payment_terms"`
	GCName                    string    `json:"gc_name"`
	Architect                 string    `json:"architect"`
	EngineerOfRecord          string    `json:"engineer_of_record"`
}
