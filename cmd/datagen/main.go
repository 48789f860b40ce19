package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mechdata/hvac-dataset/internal/catalog"
	"github.com/mechdata/hvac-dataset/internal/config"
	"github.com/mechdata/hvac-dataset/internal/db"
	"github.com/mechdata/hvac-dataset/internal/export"
	"github.com/mechdata/hvac-dataset/internal/generator"
	"github.com/mechdata/hvac-dataset/internal/logger"
	"github.com/mechdata/hvac-dataset/internal/model"
	"github.com/mechdata/hvac-dataset/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	projects, err := loadProjects(cfg.Generate.ProjectsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load projects")
	}

	gen := generator.New(cfg.Generate.Seed, cfg.Generate.AsOf, log)

	log.Info().
		Int64("seed", cfg.Generate.Seed).
		Time("as_of", cfg.Generate.AsOf).
		Int("projects", len(projects)).
		Msg("generating dataset")

	var dataset model.Dataset
	projectSets := make([]model.ProjectDataset, 0, len(projects))
	for _, project := range projects {
		ds := gen.GenerateProject(project)
		projectSets = append(projectSets, ds)
		dataset.Append(ds)
	}

	outDir := cfg.Generate.OutputDir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create output directory")
	}

	if err := export.WriteJSON(dataset, filepath.Join(outDir, "hvac_construction_dataset.json")); err != nil {
		log.Fatal().Err(err).Msg("failed to write JSON")
	}
	if err := export.WriteCSVs(dataset, outDir); err != nil {
		log.Fatal().Err(err).Msg("failed to write CSVs")
	}

	excel := export.NewExcelGenerator()
	workbook, err := excel.Generate(dataset)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build workbook")
	}
	if err := os.WriteFile(filepath.Join(outDir, "hvac_construction_dataset.xlsx"), workbook, 0o644); err != nil {
		log.Fatal().Err(err).Msg("failed to write workbook")
	}

	pdfGen := export.NewPDFGenerator()
	for _, ds := range projectSets {
		doc, err := pdfGen.Generate(ds)
		if err != nil {
			log.Fatal().Err(err).Str("project_id", ds.Project.ID).Msg("failed to build pay applications")
		}
		name := fmt.Sprintf("pay_applications_%s.pdf", ds.Project.ID)
		if err := os.WriteFile(filepath.Join(outDir, name), doc, 0o644); err != nil {
			log.Fatal().Err(err).Msg("failed to write pay applications")
		}
	}

	if cfg.DB.DSN != "" {
		database, err := db.New(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect database")
		}
		repo := repository.NewDatasetRepository(database)
		if err := repo.SaveDataset(context.Background(), dataset); err != nil {
			log.Fatal().Err(err).Msg("failed to load dataset into database")
		}
		log.Info().Msg("dataset loaded into database")
	}

	totalValue := 0.0
	for _, c := range dataset.Contracts {
		totalValue += c.OriginalContractValue
	}
	log.Info().
		Int("contracts", len(dataset.Contracts)).
		Int("sov_lines", len(dataset.SOV)).
		Int("labor_logs", len(dataset.LaborLogs)).
		Int("deliveries", len(dataset.Deliveries)).
		Int("change_orders", len(dataset.ChangeOrders)).
		Int("rfis", len(dataset.RFIs)).
		Int("field_notes", len(dataset.FieldNotes)).
		Int("billing_applications", len(dataset.BillingHistory)).
		Float64("total_contract_value", totalValue).
		Str("output_dir", outDir).
		Msg("dataset generation complete")
}

func loadProjects(path string) ([]model.Project, error) {
	if path == "" {
		return catalog.DemoProjects, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var projects []model.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("%s contains no projects", path)
	}
	return projects, nil
}
