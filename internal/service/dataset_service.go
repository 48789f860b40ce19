package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/export"
	"github.com/mechdata/hvac-dataset/internal/generator"
	"github.com/mechdata/hvac-dataset/internal/model"
)

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// ExcelGenerator renders a dataset as a workbook.
type ExcelGenerator interface {
	Generate(ds model.Dataset) ([]byte, error)
}

// DatasetService generates datasets on demand and packages them for
// download.
type DatasetService struct {
	excel ExcelGenerator
	log   zerolog.Logger
}

type GenerateInput struct {
	Seed     int64
	AsOf     time.Time
	Format   string
	Projects []model.Project
}

type GenerateResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

func NewDatasetService(excel ExcelGenerator, log zerolog.Logger) *DatasetService {
	return &DatasetService{excel: excel, log: log}
}

func (s *DatasetService) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	if input.AsOf.IsZero() {
		return nil, fmt.Errorf("%w: as_of is required", ErrInvalidInput)
	}
	if input.Format != FormatJSON && input.Format != FormatXLSX {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, input.Format)
	}

	projects := input.Projects
	if len(projects) == 0 {
		projects = catalog.DemoProjects
	}

	gen := generator.New(input.Seed, input.AsOf, s.log)
	ds := gen.GenerateAll(projects)

	s.log.Info().
		Int64("seed", input.Seed).
		Int("projects", len(projects)).
		Int("labor_logs", len(ds.LaborLogs)).
		Int("billing_applications", len(ds.BillingHistory)).
		Msg("dataset generated")

	switch input.Format {
	case FormatXLSX:
		content, err := s.excel.Generate(ds)
		if err != nil {
			return nil, err
		}
		return &GenerateResult{
			FileName:    s.buildFileName(input, "xlsx"),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	default:
		content, err := export.MarshalJSON(ds)
		if err != nil {
			return nil, err
		}
		return &GenerateResult{
			FileName:    s.buildFileName(input, "json"),
			ContentType: "application/json",
			Content:     content,
		}, nil
	}
}

func (s *DatasetService) buildFileName(input GenerateInput, ext string) string {
	return fmt.Sprintf("hvac-dataset-seed%d-%s.%s", input.Seed, input.AsOf.Format("20060102"), ext)
}
