package catalog

import "github.com/mechdata/hvac-dataset/internal/model"

// DemoProjects is the default project list used when no projects file is
// configured.
var DemoProjects = []model.Project{
	{
		ID:             "PRJ-2024-001",
		Name:           "Mercy General Hospital - HVAC Modernization",
		Type:           model.ProjectTypeHealthcare,
		Location:       "Phoenix, AZ",
		SqFt:           285000,
		Floors:         6,
		DurationMonths: 18,
		Complexity:     model.ComplexityHigh,
	},
	{
		ID:             "PRJ-2024-002",
		Name:           "Riverside Office Tower - Core & Shell MEP",
		Type:           model.ProjectTypeOffice,
		Location:       "Denver, CO",
		SqFt:           420000,
		Floors:         22,
		DurationMonths: 24,
		Complexity:     model.ComplexityHigh,
	},
	{
		ID:             "PRJ-2024-003",
		Name:           "Greenfield Elementary School - New Construction",
		Type:           model.ProjectTypeEducation,
		Location:       "Austin, TX",
		SqFt:           95000,
		Floors:         2,
		DurationMonths: 14,
		Complexity:     model.ComplexityMedium,
	},
	{
		ID:             "PRJ-2024-004",
		Name:           "Summit Data Center - Phase 2 Expansion",
		Type:           model.ProjectTypeDataCenter,
		Location:       "Ashburn, VA",
		SqFt:           65000,
		Floors:         1,
		DurationMonths: 10,
		Complexity:     model.ComplexityHigh,
	},
	{
		ID:             "PRJ-2024-005",
		Name:           "Harbor View Condominiums - 3 Buildings",
		Type:           model.ProjectTypeMultifamily,
		Location:       "Seattle, WA",
		SqFt:           340000,
		Floors:         8,
		DurationMonths: 20,
		Complexity:     model.ComplexityMedium,
	},
}
