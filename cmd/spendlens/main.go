package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spendlens/internal/api"
	"spendlens/internal/api/handlers"
	"spendlens/internal/repository"
	"spendlens/internal/service"
	"spendlens/pkg/auth"
	"spendlens/pkg/config"
	"spendlens/pkg/logger"
	"spendlens/pkg/postgres"

	"go.uber.org/zap"
)

// @title SpendLens API
// @version 1.0
// @description Receipt parsing and spending-insight service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting SpendLens service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	extractor := service.NewTextExtractor(appLogger)
	parser := service.NewReceiptParser()
	receiptService := service.NewReceiptService(extractor, parser, txRepo, cfg.Receipt.AutoPersist, appLogger)

	insightService := service.NewInsightService(llmService, txRepo, goalRepo, &cfg.Insight, appLogger)
	txService := service.NewTransactionService(txRepo, appLogger)
	goalService := service.NewGoalService(goalRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	receiptHandler := handlers.NewReceiptHandler(receiptService, appLogger)
	insightHandler := handlers.NewInsightHandler(insightService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	goalHandler := handlers.NewGoalHandler(goalService, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, authHandler, receiptHandler, insightHandler, txHandler, goalHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
