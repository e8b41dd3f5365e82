package main

import (
	"fmt"
	"log"

	"gstbooks/internal/config"
	"gstbooks/internal/handler"
	"gstbooks/internal/repository/postgres"
	"gstbooks/internal/router"
	"gstbooks/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	txnRepo := postgres.NewTransactionRepo(db)

	// Initialize services
	filingSvc := service.NewFilingService(txnRepo, cfg.Report)
	cashflowSvc := service.NewCashflowService(txnRepo)
	transactionSvc := service.NewTransactionService(txnRepo)

	// Initialize handlers
	reportH := handler.NewReportHandler(filingSvc, cfg.Report)
	dashboardH := handler.NewDashboardHandler(cashflowSvc)
	transactionH := handler.NewTransactionHandler(transactionSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, reportH, dashboardH, transactionH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
