package main

import (
	"fmt"
	"os"

	"chipstock/internal/cli"
	"chipstock/internal/config"
	"chipstock/internal/logger"
	"chipstock/internal/repository"
	"chipstock/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.App.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting chip inventory manager",
		zap.String("env", cfg.App.Env),
		zap.String("data_file", cfg.Store.DataFile),
		zap.String("discount_basis", cfg.Billing.DiscountBasis),
	)

	// Open the backing store; an unreadable or uncreatable data file is the
	// one unrecoverable initialization failure.
	chipRepo, err := repository.NewFileChipRepository(cfg.Store.DataFile, log)
	if err != nil {
		log.Fatal("Failed to initialize data file", zap.Error(err))
	}

	// Initialize services
	inventory := service.NewInventoryService(chipRepo)
	billing := service.NewBillingService(chipRepo, cfg.Billing.TaxRate, service.ParseDiscountBasis(cfg.Billing.DiscountBasis))

	// Run the menu loop until exit or end of input
	menu := cli.NewMenu(inventory, billing, log, os.Stdin, os.Stdout)
	if err := menu.Run(); err != nil {
		log.Error("Menu session ended with error", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}

	log.Info("Session ended")
}
