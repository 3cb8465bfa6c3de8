package api

import (
	"spendlens/internal/api/handlers"
	"spendlens/pkg/auth"
	"spendlens/pkg/config"
	"spendlens/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.ServerConfig,
	authHandler *handlers.AuthHandler,
	receiptHandler *handlers.ReceiptHandler,
	insightHandler *handlers.InsightHandler,
	txHandler *handlers.TransactionHandler,
	goalHandler *handlers.GoalHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimit,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Receipt parsing and summaries identify the user explicitly, so they
	// accept both structured and opaque identifiers without a session.
	app.Post("/receipts/parse", receiptHandler.ParseReceipt)
	app.Post("/insights/summary", insightHandler.Summary)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	transactions := protected.Group("/transactions")
	transactions.Post("", txHandler.Add)
	transactions.Get("", txHandler.List)
	transactions.Get("/categories", txHandler.Categories)

	goals := protected.Group("/goals")
	goals.Post("", goalHandler.Add)
	goals.Get("", goalHandler.List)

	return app
}
