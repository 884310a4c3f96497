package main

import (
	"fmt"
	"os"

	"github.com/smartpack/carwash-service/internal/auth"
	"github.com/smartpack/carwash-service/internal/config"
	"github.com/smartpack/carwash-service/internal/db"
	"github.com/smartpack/carwash-service/internal/excel"
	httphandler "github.com/smartpack/carwash-service/internal/http"
	"github.com/smartpack/carwash-service/internal/http/middleware"
	"github.com/smartpack/carwash-service/internal/logger"
	"github.com/smartpack/carwash-service/internal/pdf"
	"github.com/smartpack/carwash-service/internal/repository"
	"github.com/smartpack/carwash-service/internal/service"
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

	carRepo := repository.NewCarRepository(database)
	packageRepo := repository.NewPackageRepository(database)
	recordRepo := repository.NewServicePackageRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	reportRepo := repository.NewReportRepository(database)

	carService := service.NewCarService(carRepo)
	packageService := service.NewPackageService(packageRepo)
	recordService := service.NewServicePackageService(recordRepo, carRepo, packageRepo)
	paymentService := service.NewPaymentService(paymentRepo, recordRepo)
	reportService := service.NewReportService(reportRepo, excel.NewGenerator(), pdf.NewGenerator())

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(carService, packageService, recordService, paymentService, reportService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting carwash service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
