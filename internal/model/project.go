package model

type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

type ProjectType string

const (
	ProjectTypeHealthcare  ProjectType = "Healthcare"
	ProjectTypeOffice      ProjectType = "Commercial Office"
	ProjectTypeEducation   ProjectType = "K-12 Education"
	ProjectTypeDataCenter  ProjectType = "Data Center"
	ProjectTypeMultifamily ProjectType = "Multifamily Residential"
)

// Project is the immutable input describing one job. Everything else in the
// dataset is derived from it.
type Project struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Type           ProjectType `json:"type"`
	Location       string      `json:"location"`
	SqFt           int         `json:"sq_ft"`
	Floors         int         `json:"floors"`
	DurationMonths int         `json:"duration_months"`
	Complexity     Complexity  `json:"complexity"`
}
