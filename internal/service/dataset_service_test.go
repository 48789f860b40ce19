package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mechdata/hvac-dataset/internal/model"
)

type fakeExcel struct {
	called bool
	err    error
}

func (f *fakeExcel) Generate(ds model.Dataset) ([]byte, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return []byte("workbook"), nil
}

func smallProject() model.Project {
	return model.Project{
		ID:             "PRJ-2024-201",
		Name:           "Service Test Project",
		Type:           model.ProjectTypeEducation,
		Location:       "Austin, TX",
		SqFt:           50000,
		Floors:         2,
		DurationMonths: 6,
		Complexity:     model.ComplexityLow,
	}
}

func TestGenerateRejectsZeroAsOf(t *testing.T) {
	svc := NewDatasetService(&fakeExcel{}, zerolog.Nop())

	_, err := svc.Generate(context.Background(), GenerateInput{
		Seed:   42,
		Format: FormatJSON,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	svc := NewDatasetService(&fakeExcel{}, zerolog.Nop())

	_, err := svc.Generate(context.Background(), GenerateInput{
		Seed:   42,
		AsOf:   time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC),
		Format: "parquet",
	})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestGenerateJSON(t *testing.T) {
	excel := &fakeExcel{}
	svc := NewDatasetService(excel, zerolog.Nop())

	result, err := svc.Generate(context.Background(), GenerateInput{
		Seed:     42,
		AsOf:     time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC),
		Format:   FormatJSON,
		Projects: []model.Project{smallProject()},
	})
	require.NoError(t, err)
	require.False(t, excel.called)
	require.Equal(t, "hvac-dataset-seed42-20240901.json", result.FileName)
	require.Equal(t, "application/json", result.ContentType)

	var ds model.Dataset
	require.NoError(t, json.Unmarshal(result.Content, &ds))
	require.Len(t, ds.Contracts, 1)
	require.Len(t, ds.SOV, 15)
	require.NotEmpty(t, ds.BillingHistory)
}

func TestGenerateXLSXUsesExcelGenerator(t *testing.T) {
	excel := &fakeExcel{}
	svc := NewDatasetService(excel, zerolog.Nop())

	result, err := svc.Generate(context.Background(), GenerateInput{
		Seed:     7,
		AsOf:     time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC),
		Format:   FormatXLSX,
		Projects: []model.Project{smallProject()},
	})
	require.NoError(t, err)
	require.True(t, excel.called)
	require.Equal(t, "hvac-dataset-seed7-20240901.xlsx", result.FileName)
	require.Equal(t, []byte("workbook"), result.Content)
}

func TestGenerateIsDeterministic(t *testing.T) {
	svc := NewDatasetService(&fakeExcel{}, zerolog.Nop())

	input := GenerateInput{
		Seed:     42,
		AsOf:     time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC),
		Format:   FormatJSON,
		Projects: []model.Project{smallProject()},
	}

	first, err := svc.Generate(context.Background(), input)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), input)
	require.NoError(t, err)

	require.Equal(t, first.Content, second.Content)
}
