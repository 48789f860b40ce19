package model

// ProjectDataset is every record collection generated for a single project,
// in the dependency order the generator produces them.
type ProjectDataset struct {
	Project        Project
	Contract       Contract
	SOVLines       []SOVLine
	LaborLogs      []LaborLogEntry
	Deliveries     []Delivery
	ChangeOrders   []ChangeOrder
	RFIs           []RFI
	FieldNotes     []FieldNote
	BillingHistory []BillingApplication
	BidEstimate    BidEstimate
}

// Dataset aggregates the flat tables across all projects, mirroring the
// emitted file layout.
type Dataset struct {
	Contracts      []Contract           `json:"contracts"`
	SOV            []SOVLine            `json:"sov"`
	LaborLogs      []LaborLogEntry      `json:"labor_logs"`
	Deliveries     []Delivery           `json:"material_deliveries"`
	ChangeOrders   []ChangeOrder        `json:"change_orders"`
	RFIs           []RFI                `json:"rfis"`
	FieldNotes     []FieldNote          `json:"field_notes"`
	BillingHistory []BillingApplication `json:"billing_history"`
	BidEstimates   []BidEstimate        `json:"bid_estimates"`
}

// Append merges one project's records into the aggregate tables.
func (d *Dataset) Append(p ProjectDataset) {
	d.Contracts = append(d.Contracts, p.Contract)
	d.SOV = append(d.SOV, p.SOVLines...)
	d.LaborLogs = append(d.LaborLogs, p.LaborLogs...)
	d.Deliveries = append(d.Deliveries, p.Deliveries...)
	d.ChangeOrders = append(d.ChangeOrders, p.ChangeOrders...)
	d.RFIs = append(d.RFIs, p.RFIs...)
	d.FieldNotes = append(d.FieldNotes, p.FieldNotes...)
	d.BillingHistory = append(d.BillingHistory, p.BillingHistory...)
	d.BidEstimates = append(d.BidEstimates, p.BidEstimate)
}
