// Package generator is the cross-entity consistency engine. It derives every
// downstream table for a project from its contract value and SOV allocation
// while preserving the conservation invariants: SOV lines sum to contract
// value exactly, deliveries sum to each line's material budget, and
// cumulative billing is monotone and capped per line.
package generator

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mechdata/hvac-dataset/internal/model"
	"github.com/mechdata/hvac-dataset/internal/random"
	"github.com/mechdata/hvac-dataset/internal/text"
)

// blendedLaborRate is the $/hr rate used when converting labor budget
// dollars into estimated hours.
const blendedLaborRate = 65.0

const workDaysPerMonth = 22

// Generator produces one project's dataset at a time. Draws are made in a
// fixed component order, so output is reproducible from (seed, asOf,
// project list) alone.
type Generator struct {
	src      *random.Source
	renderer text.Renderer
	asOf     time.Time
	log      zerolog.Logger
}

// New builds a generator around a freshly seeded source. asOf anchors the
// change-order staleness buckets instead of the wall clock.
func New(seed int64, asOf time.Time, log zerolog.Logger) *Generator {
	return &Generator{
		src:      random.New(seed),
		renderer: text.NewRenderer(),
		asOf:     asOf,
		log:      log,
	}
}

// GenerateProject runs every component in dependency order and returns the
// complete record set for one project.
func (g *Generator) GenerateProject(project model.Project) model.ProjectDataset {
	contract := g.generateContract(project)
	sovLines := g.allocateSOV(project, contract.OriginalContractValue)
	start := contract.ContractDate

	ds := model.ProjectDataset{
		Project:        project,
		Contract:       contract,
		SOVLines:       sovLines,
		LaborLogs:      g.generateLaborLogs(project, sovLines, start),
		Deliveries:     g.generateDeliveries(project, sovLines, start),
		ChangeOrders:   g.generateChangeOrders(project, contract.OriginalContractValue, sovLines, start),
		RFIs:           g.generateRFIs(project, start),
		FieldNotes:     g.generateFieldNotes(project, start),
		BillingHistory: g.generateBillingHistory(project, sovLines, start),
	}
	ds.BidEstimate = g.generateBidEstimate(project, contract.OriginalContractValue, sovLines)

	g.log.Debug().
		Str("project_id", project.ID).
		Float64("contract_value", contract.OriginalContractValue).
		Int("labor_logs", len(ds.LaborLogs)).
		Int("deliveries", len(ds.Deliveries)).
		Int("change_orders", len(ds.ChangeOrders)).
		Int("rfis", len(ds.RFIs)).
		Int("billing_applications", len(ds.BillingHistory)).
		Msg("project generated")

	return ds
}

// GenerateAll processes projects sequentially and aggregates the flat
// tables.
func (g *Generator) GenerateAll(projects []model.Project) model.Dataset {
	var ds model.Dataset
	for _, project := range projects {
		ds.Append(g.GenerateProject(project))
	}
	return ds
}

// shortID yields the 8-hex-character record identifiers used for labor logs
// and field notes. The UUID is drawn from the seeded source, not crypto
// rand, to keep runs reproducible.
func (g *Generator) shortID() string {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		panic(err)
	}
	return id.String()[:8]
}

func (g *Generator) hexID(n int) string {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		panic(err)
	}
	raw := id.String()
	out := make([]byte, 0, n)
	for i := 0; i < len(raw) && len(out) < n; i++ {
		if raw[i] != '-' {
			out = append(out, raw[i])
		}
	}
	return string(out)
}

func roundToNearest(value, unit float64) float64 {
	return math.Round(value/unit) * unit
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
