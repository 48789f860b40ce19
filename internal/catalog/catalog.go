// Package catalog holds the static reference data the generators sample
// from: the SOV template, crew roles, material lists and name pools. All of
// it is read-only.
package catalog

// SOVTemplateLine declares one schedule-of-values category with the range
// its share of contract value is drawn from.
type SOVTemplateLine struct {
	Code        string
	Description string
	PctMin      float64
	PctMax      float64
}

var SOVTemplate = []SOVTemplateLine{
	{Code: "01", Description: "General Conditions & Project Management", PctMin: 0.06, PctMax: 0.09},
	{Code: "02", Description: "Submittals & Engineering", PctMin: 0.02, PctMax: 0.04},
	{Code: "03", Description: "Ductwork - Fabrication", PctMin: 0.08, PctMax: 0.12},
	{Code: "04", Description: "Ductwork - Installation", PctMin: 0.10, PctMax: 0.14},
	{Code: "05", Description: "Piping - Hydronic Systems", PctMin: 0.08, PctMax: 0.12},
	{Code: "06", Description: "Piping - Refrigerant", PctMin: 0.04, PctMax: 0.07},
	{Code: "07", Description: "Equipment - RTUs/AHUs", PctMin: 0.12, PctMax: 0.18},
	{Code: "08", Description: "Equipment - Chillers/Boilers", PctMin: 0.08, PctMax: 0.14},
	{Code: "09", Description: "Equipment - Terminal Units (VAV/FCU)", PctMin: 0.06, PctMax: 0.10},
	{Code: "10", Description: "Controls - DDC/BAS Installation", PctMin: 0.06, PctMax: 0.10},
	{Code: "11", Description: "Controls - Programming & Commissioning", PctMin: 0.03, PctMax: 0.05},
	{Code: "12", Description: "Insulation", PctMin: 0.04, PctMax: 0.06},
	{Code: "13", Description: "Testing, Adjusting & Balancing (TAB)", PctMin: 0.02, PctMax: 0.04},
	{Code: "14", Description: "Startup & Commissioning Support", PctMin: 0.02, PctMax: 0.03},
	{Code: "15", Description: "Closeout Documentation & Training", PctMin: 0.01, PctMax: 0.02},
}

type CrewRole struct {
	Role       string
	HourlyRate float64
	BurdenRate float64
}

var CrewRoles = []CrewRole{
	{Role: "Foreman", HourlyRate: 85.50, BurdenRate: 1.42},
	{Role: "Journeyman Sheet Metal", HourlyRate: 72.00, BurdenRate: 1.42},
	{Role: "Journeyman Pipefitter", HourlyRate: 74.50, BurdenRate: 1.42},
	{Role: "Apprentice 4th Year", HourlyRate: 52.00, BurdenRate: 1.38},
	{Role: "Apprentice 2nd Year", HourlyRate: 38.00, BurdenRate: 1.38},
	{Role: "Controls Technician", HourlyRate: 68.00, BurdenRate: 1.40},
	{Role: "Insulator", HourlyRate: 58.00, BurdenRate: 1.40},
	{Role: "Helper/Laborer", HourlyRate: 32.00, BurdenRate: 1.35},
}

type MaterialCategory struct {
	Category string
	Items    []string
}

var MaterialCategories = []MaterialCategory{
	{Category: "Ductwork", Items: []string{
		`Galvanized Sheet Metal 22ga`, `Galvanized Sheet Metal 20ga`,
		`Flex Duct 8"`, `Flex Duct 10"`, `Flex Duct 12"`,
		`Spiral Duct 12"`, `Spiral Duct 16"`, `Spiral Duct 24"`,
		`Duct Sealant`, `Hanging Hardware`,
	}},
	{Category: "Piping", Items: []string{
		`Copper Type L 1"`, `Copper Type L 1.5"`, `Copper Type L 2"`,
		`Black Steel Sch40 2"`, `Black Steel Sch40 4"`, `PVC Sch40 4"`,
		`Pipe Hangers Assorted`, `Brazing Alloy`, `Flux`, `Refrigerant R-410A`,
	}},
	{Category: "Equipment", Items: []string{
		`RTU 15-Ton`, `RTU 25-Ton`, `AHU Custom`, `Chiller 200-Ton`,
		`Boiler 2000MBH`, `VAV Box 12"`, `VAV Box 16"`, `FCU 2-Pipe`,
		`FCU 4-Pipe`, `Split System 3-Ton`,
	}},
	{Category: "Controls", Items: []string{
		`DDC Controller`, `VAV Controller`, `Temp Sensor`, `Pressure Sensor`,
		`Actuator 24V`, `Damper Motor`, `Control Valve 1"`, `Control Valve 2"`,
		`BACnet Gateway`, `Touchscreen Interface`,
	}},
	{Category: "Insulation", Items: []string{
		`Fiberglass Duct Wrap R-8`, `Fiberglass Duct Liner R-6`,
		`Pipe Insulation 1" Armaflex`, `Pipe Insulation 2" Armaflex`,
		`Insulation Adhesive`, `Vapor Barrier Tape`,
	}},
}

// sovLineMaterials maps SOV line numbers to the material category delivered
// against them. Lines outside the map carry no deliveries.
var sovLineMaterials = map[int]string{
	3: "Ductwork", 4: "Ductwork",
	5: "Piping", 6: "Piping",
	7: "Equipment", 8: "Equipment", 9: "Equipment",
	10: "Controls", 11: "Controls",
	12: "Insulation",
}

// MaterialCategoryForLine resolves the material category delivered against an
// SOV line number.
func MaterialCategoryForLine(lineNumber int) (MaterialCategory, bool) {
	name, ok := sovLineMaterials[lineNumber]
	if !ok {
		return MaterialCategory{}, false
	}
	for _, cat := range MaterialCategories {
		if cat.Category == name {
			return cat, true
		}
	}
	return MaterialCategory{}, false
}

// CostPerSqFt gives the uniform draw range for base cost per square foot by
// project type.
type CostRange struct {
	Min float64
	Max float64
}

var CostPerSqFt = map[string]CostRange{
	"Healthcare":              {Min: 85, Max: 120},
	"Commercial Office":       {Min: 45, Max: 65},
	"K-12 Education":          {Min: 55, Max: 75},
	"Data Center":             {Min: 180, Max: 280},
	"Multifamily Residential": {Min: 35, Max: 50},
}

var ComplexityMultiplier = map[string]float64{
	"low":    0.9,
	"medium": 1.0,
	"high":   1.15,
}

var (
	GeneralContractors = []string{"Turner Construction", "DPR Construction", "Skanska USA", "JE Dunn", "Mortenson"}
	Architects         = []string{"Gensler", "HOK", "Perkins&Will", "HKS", "SmithGroup"}
	Engineers          = []string{"WSP", "ARUP", "Syska Hennessy", "Henderson Engineers", "AEI"}
	Vendors            = []string{"Ferguson Supply", "Winsupply", "RE Michel", "ACR Group", "Carrier Enterprise", "Johnstone Supply"}
	Receivers          = []string{"J. Martinez", "K. Thompson", "R. Williams", "M. Chen", "D. Patel"}
	NoteAuthors        = []string{"J. Martinez", "K. Thompson", "R. Williams", "M. Chen"}
	COSubmitters       = []string{"J. Martinez", "K. Thompson", "R. Williams"}
	Estimators         = []string{"S. Johnson", "M. Rodriguez", "T. Wilson"}
	EquipmentVendors   = []string{"Carrier", "Trane", "Daikin"}
	ControlsVendors    = []string{"Siemens", "Johnson Controls", "Honeywell"}
)

var ConditionNotes = []string{
	"Good condition",
	"Good condition",
	"Good condition",
	"Minor packaging damage - product OK",
	"Partial shipment - backorder pending",
	"Good condition",
}

var NoteTypes = []string{"Daily Report", "Safety Log", "Coordination Note", "Inspection Note", "Issue Log"}
