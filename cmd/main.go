package main

import (
	"net/http"

	"catering-service/internal/bot"
	"catering-service/internal/handler"
	mid "catering-service/internal/middleware"
	"catering-service/internal/session"
	"catering-service/internal/store"
	"catering-service/pkg/config"
	"catering-service/pkg/database"
	"catering-service/pkg/jwtutil"
	"catering-service/pkg/logger"
	"catering-service/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file; missing file is fine in environments where the
	// variables are set directly.
	_ = godotenv.Load()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting catering-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility for the operator API
	jwtutil.Initialize(&appConfig.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Seed the catalog once, guarded by an empty-table check
	if err := store.Seed(database.GetDB()); err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}
	log.Info("Catalog ready")

	// Stores
	db := database.GetDB()
	catalogStore := store.NewCatalogStore(db)
	cartStore := store.NewCartStore(db)
	orderStore := store.NewOrderStore(db)
	userStore := store.NewUserStore(db)

	// Conversation layer
	sessions := session.NewManager()
	dispatcher := bot.NewDispatcher(
		catalogStore, cartStore, orderStore, userStore,
		sessions, appConfig.Bot.OperatorIDs, appConfig.Bot.MinPhoneLen, log)
	if len(appConfig.Bot.OperatorIDs) == 0 {
		log.Warn("OPERATOR_IDS not set, order notifications will not be emitted")
	}

	// Handlers
	catalogHandler := handler.NewCatalogHandler(catalogStore)
	cartHandler := handler.NewCartHandler(cartStore)
	orderHandler := handler.NewOrderHandler(orderStore, cartStore)
	webhookHandler := handler.NewWebhookHandler(dispatcher)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Chat gateway entry point
	e.POST("/webhook", webhookHandler.HandleEvent)

	// Catalog API routes
	api := e.Group("/api")
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/categories/:id/products", catalogHandler.ListCategoryProducts)
	api.GET("/products/:id", catalogHandler.GetProduct)

	// Cart API routes
	api.GET("/cart/:user_id", cartHandler.GetCart)
	api.POST("/cart/:user_id/items", cartHandler.ChangeQuantity)
	api.DELETE("/cart/:user_id/items/:product_id", cartHandler.RemoveItem)

	// Checkout
	api.POST("/orders/:user_id", orderHandler.CreateOrder)

	// Operator API routes - JWT-guarded
	operatorAPI := e.Group("/api/operator", mid.AuthMiddleware)
	operatorAPI.GET("/orders", orderHandler.ListOrders)
	operatorAPI.GET("/orders/:id", orderHandler.GetOrder)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
