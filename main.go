package main

import (
	"errors"
	"os"

	"holiday-planner/config"
	"holiday-planner/models"
	"holiday-planner/services"
	"holiday-planner/storage"
	"holiday-planner/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(os.Stderr, utils.ParseLevel(cfg.LogLevel))

	logger.Info("=== Holiday Planner starting ===")
	logger.Info("Config: data dir: %s | max transaction attempts: %d",
		cfg.DataDir, cfg.MaxTransactionAttempts)

	console := utils.NewConsole(os.Stdin, os.Stdout)
	store := storage.NewFileStore(cfg.DataDir)
	numbers := services.NewTransactionNumberGenerator(nil, cfg.MaxTransactionAttempts, logger)

	workflow := services.NewBookingWorkflow(console, models.DefaultPriceTable(), store, logger,
		services.WithNumberGenerator(numbers))

	if _, err := workflow.Run(); err != nil {
		if errors.Is(err, services.ErrUnderage) {
			console.Println("You must be supervised by a parent or guardian. Exiting program.")
			os.Exit(1)
		}
		logger.Error("Booking failed: %v", err)
		os.Exit(1)
	}
}
