package main

import (
	"fmt"
	"os"

	"github.com/obinna/dredgeops/internal/auth"
	"github.com/obinna/dredgeops/internal/config"
	"github.com/obinna/dredgeops/internal/db"
	"github.com/obinna/dredgeops/internal/excel"
	httphandler "github.com/obinna/dredgeops/internal/http"
	"github.com/obinna/dredgeops/internal/http/middleware"
	"github.com/obinna/dredgeops/internal/logger"
	"github.com/obinna/dredgeops/internal/pdf"
	"github.com/obinna/dredgeops/internal/repository"
	"github.com/obinna/dredgeops/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	dredgerRepo := repository.NewDredgerRepository(database)
	transporterRepo := repository.NewTransporterRepository(database)
	tripRepo := repository.NewTripRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)

	registryService := service.NewRegistryService(dredgerRepo, transporterRepo, tripRepo, paymentRepo)
	reportService := service.NewReportService(
		dredgerRepo,
		transporterRepo,
		tripRepo,
		paymentRepo,
		excel.NewGenerator(),
		pdf.NewGenerator(),
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(registryService, reportService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting dredgeops service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
