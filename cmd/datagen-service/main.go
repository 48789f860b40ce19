package main

import (
	"fmt"
	"os"

	"github.com/mechdata/hvac-dataset/internal/auth"
	"github.com/mechdata/hvac-dataset/internal/config"
	"github.com/mechdata/hvac-dataset/internal/export"
	httphandler "github.com/mechdata/hvac-dataset/internal/http"
	"github.com/mechdata/hvac-dataset/internal/http/middleware"
	"github.com/mechdata/hvac-dataset/internal/logger"
	"github.com/mechdata/hvac-dataset/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	if cfg.Auth.AccessSecret == "" {
		log.Fatal().Msg("JWT_ACCESS_SECRET is required")
	}

	datasetService := service.NewDatasetService(export.NewExcelGenerator(), log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(datasetService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting datagen service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
