package main

import (
	"context"
	"log"

	"github.com/ElWaje/PrestamoDefi/configs"
	"github.com/ElWaje/PrestamoDefi/internal/app/router"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/ledger"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/logger"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/otel"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/services"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	//setup otel collector
	_, err = otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}

	// Ledger connection
	gateway, err := ledger.NewGateway(ctx, configs.NODE_URL, configs.CONTRACT_ADDRESS, configs.CONTRACT_ABI_PATH)
	if err != nil {
		log.Fatalf("Failed to connect to ledger node: %v", err)
	}
	defer gateway.Close()
	logger.Info(ctx, "Connected to ledger node %s, contract %s", configs.NODE_URL, configs.CONTRACT_ADDRESS)

	executor := services.NewTxOrchestrator(
		gateway,
		configs.MAX_RETRIES,
		configs.RETRY_BACKOFF_SECONDS,
		configs.CONFIRMATION_TIMEOUT_SECONDS,
		configs.GAS_LIMIT_HEADROOM,
	)
	loanService := services.NewLoanService(gateway, executor)

	r := router.SetupRouter(loanService)

	port := configs.SERVER_PORT

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
