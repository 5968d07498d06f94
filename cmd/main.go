package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/agrover-luv/SlashAlert-API/internal/handler"
	mid "github.com/agrover-luv/SlashAlert-API/internal/middleware"
	"github.com/agrover-luv/SlashAlert-API/internal/repository/cosmos"
	"github.com/agrover-luv/SlashAlert-API/internal/repository/factory"
	"github.com/agrover-luv/SlashAlert-API/internal/repository/mongodb"
	"github.com/agrover-luv/SlashAlert-API/pkg/config"
	"github.com/agrover-luv/SlashAlert-API/pkg/database"
	"github.com/agrover-luv/SlashAlert-API/pkg/googleauth"
	"github.com/agrover-luv/SlashAlert-API/pkg/logger"
	"github.com/agrover-luv/SlashAlert-API/prometheus"
)

func main() {
	// Load configuration (also reads .env when present)
	appConfig, err := config.Load("slashalert-api")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting slashalert-api", appConfig.LogConfig()...)

	// Initialize token validation
	googleauth.Initialize(appConfig.Auth.GoogleClientID)
	log.Info("Google token verifier initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Build the storage provider named by configuration
	factoryConfig := factory.Config{
		Provider:          appConfig.Storage.Provider,
		CSVBasePath:       appConfig.CSV.BasePath,
		LegacyTenantField: appConfig.Storage.LegacyTenantField,
		Mongo: mongodb.Config{
			ConnectionString:  appConfig.Mongo.ConnectionString,
			DatabaseName:      appConfig.Mongo.DatabaseName,
			LegacyTenantField: appConfig.Storage.LegacyTenantField,
		},
		Cosmos: cosmos.Config{
			Endpoint:          appConfig.Cosmos.Endpoint,
			Key:               appConfig.Cosmos.Key,
			DatabaseName:      appConfig.Cosmos.DatabaseName,
			ProductsContainer: appConfig.Cosmos.ProductsContainer,
			AlertsContainer:   appConfig.Cosmos.AlertsContainer,
			UsersContainer:    appConfig.Cosmos.UsersContainer,
		},
	}

	// The relational handle is only opened when the sql provider is
	// selected
	if appConfig.Storage.Provider == factory.ProviderSQL {
		db, err := database.InitDB(&appConfig.DB)
		if err != nil {
			log.Fatal("Failed to initialize database", zap.Error(err))
		}
		factoryConfig.SQLDB = db
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	provider, err := factory.New(ctx, factoryConfig)
	cancel()
	if err != nil {
		log.Fatal("Failed to initialize storage provider",
			zap.String("provider", appConfig.Storage.Provider),
			zap.Error(err))
	}
	log.Info("Storage provider initialized",
		zap.String("provider", appConfig.Storage.Provider))

	handler.Initialize(provider)
	handler.SetProviderName(appConfig.Storage.Provider)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/", handler.Hello)

	// Product API routes
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("", handler.ListProducts)
	productAPI.GET("/count", handler.CountProducts)
	productAPI.GET("/:id", handler.GetProduct)
	productAPI.POST("", handler.CreateProduct)
	productAPI.PUT("/:id", handler.UpdateProduct)
	productAPI.DELETE("/:id", handler.DeleteProduct)

	// Alert API routes
	alertAPI := e.Group("/api/alerts", mid.AuthMiddleware)
	alertAPI.GET("", handler.ListAlerts)
	alertAPI.GET("/count", handler.CountAlerts)
	alertAPI.GET("/:id", handler.GetAlert)
	alertAPI.POST("", handler.CreateAlert)
	alertAPI.PUT("/:id", handler.UpdateAlert)
	alertAPI.DELETE("/:id", handler.DeleteAlert)

	// Retailer API routes
	retailerAPI := e.Group("/api/retailers", mid.AuthMiddleware)
	retailerAPI.GET("", handler.ListRetailers)
	retailerAPI.GET("/count", handler.CountRetailers)
	retailerAPI.GET("/:id", handler.GetRetailer)
	retailerAPI.POST("", handler.CreateRetailer)
	retailerAPI.PUT("/:id", handler.UpdateRetailer)
	retailerAPI.DELETE("/:id", handler.DeleteRetailer)

	// Review API routes
	reviewAPI := e.Group("/api/reviews", mid.AuthMiddleware)
	reviewAPI.GET("", handler.ListReviews)
	reviewAPI.GET("/count", handler.CountReviews)
	reviewAPI.GET("/:id", handler.GetReview)
	reviewAPI.POST("", handler.CreateReview)
	reviewAPI.PUT("/:id", handler.UpdateReview)
	reviewAPI.DELETE("/:id", handler.DeleteReview)

	// Price history API routes
	historyAPI := e.Group("/api/price-history", mid.AuthMiddleware)
	historyAPI.GET("", handler.ListPriceHistories)
	historyAPI.GET("/count", handler.CountPriceHistories)
	historyAPI.GET("/:id", handler.GetPriceHistory)
	historyAPI.POST("", handler.CreatePriceHistory)
	historyAPI.PUT("/:id", handler.UpdatePriceHistory)
	historyAPI.DELETE("/:id", handler.DeletePriceHistory)

	// Price cache API routes
	cacheAPI := e.Group("/api/price-cache", mid.AuthMiddleware)
	cacheAPI.GET("", handler.ListPriceCaches)
	cacheAPI.GET("/count", handler.CountPriceCaches)
	cacheAPI.GET("/:id", handler.GetPriceCache)
	cacheAPI.POST("", handler.CreatePriceCache)
	cacheAPI.PUT("/:id", handler.UpdatePriceCache)
	cacheAPI.DELETE("/:id", handler.DeletePriceCache)

	// User API routes
	userAPI := e.Group("/api/users", mid.AuthMiddleware)
	userAPI.GET("", handler.ListUsers)
	userAPI.GET("/me", handler.Me)
	userAPI.GET("/count", handler.CountUsers)
	userAPI.GET("/:id", handler.GetUser)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
