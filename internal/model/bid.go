package model

import "time"

// BidEstimate is a retrospective as-bid snapshot derived from the finalized
// SOV allocation.
type BidEstimate struct {
	ProjectID    string                   `json:"project_id"`
	BidDate      time.Time                `json:"bid_date"`
	BidAmount    float64                  `json:"bid_amount"`
	Estimator    string                   `json:"estimator"`
	Labor        LaborAssumptions         `json:"labor_assumptions"`
	Material     MaterialAssumptions      `json:"material_assumptions"`
	Subs         SubcontractorAssumptions `json:"subcontractor_assumptions"`
	GeneralConds GeneralConditions        `json:"general_conditions"`
	Markup       Markup                   `json:"markup"`
	Risk         RiskAllowances           `json:"risk_allowances"`

	KeyAssumptions []string `json:"key_assumptions"`
	Exclusions     []string `json:"exclusions"`
	Clarifications []string `json:"clarifications"`
}

type CrewMix struct {
	ForemanPct    float64 `json:"foreman_pct"`
	JourneymanPct float64 `json:"journeyman_pct"`
	ApprenticePct float64 `json:"apprentice_pct"`
	HelperPct     float64 `json:"helper_pct"`
}

type LaborAssumptions struct {
	TotalHoursEstimated  int     `json:"total_hours_estimated"`
	BlendedLaborRate     float64 `json:"blended_labor_rate"`
	ProductivityFactor   float64 `json:"productivity_factor"`
	CrewMix              CrewMix `json:"crew_mix"`
	OvertimeAllowancePct float64 `json:"overtime_allowance_pct"`
	ShiftPremium         float64 `json:"shift_premium"`
}

type MaterialQuote struct {
	Item         string    `json:"item"`
	Vendor       string    `json:"vendor"`
	QuoteDate    time.Time `json:"quote_date"`
	ValidityDays int       `json:"validity_days"`
}

type MaterialAssumptions struct {
	EscalationFactorPct float64         `json:"escalation_factor_pct"`
	WasteFactorPct      float64         `json:"waste_factor_pct"`
	FreightPct          float64         `json:"freight_pct"`
	KeyMaterialQuotes   []MaterialQuote `json:"key_material_quotes"`
}

type SubQuote struct {
	Name  string  `json:"name"`
	Quote float64 `json:"quote"`
}

type SubcontractorAssumptions struct {
	InsulationSub SubQuote `json:"insulation_sub"`
	TABSub        SubQuote `json:"tab_sub"`
	ControlsSub   SubQuote `json:"controls_sub"`
}

type GeneralConditions struct {
	ProjectManagementMonths int     `json:"project_management_months"`
	SiteSupervisionMonths   int     `json:"site_supervision_months"`
	EquipmentRentalMonths   int     `json:"equipment_rental_months"`
	SmallToolsPct           float64 `json:"small_tools_pct"`
	ConsumablesPct          float64 `json:"consumables_pct"`
}

type Markup struct {
	OverheadPct  float64 `json:"overhead_pct"`
	ProfitPct    float64 `json:"profit_pct"`
	BondPct      float64 `json:"bond_pct"`
	InsurancePct float64 `json:"insurance_pct"`
}

type RiskAllowances struct {
	DesignContingencyPct     float64 `json:"design_contingency_pct"`
	EscalationContingencyPct float64 `json:"escalation_contingency_pct"`
	ScheduleRiskPct          float64 `json:"schedule_risk_pct"`
}
