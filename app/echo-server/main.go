package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"whatoGift/app/echo-server/metrics"
	"whatoGift/app/echo-server/router"
	"whatoGift/business/catalog"
	"whatoGift/business/company"
	"whatoGift/business/gift"
	"whatoGift/internal/middleware"
	psqlRepo "whatoGift/internal/repository/postgres"
	redisRepo "whatoGift/internal/repository/redis"
	"whatoGift/internal/rest"
	"whatoGift/pkg/config"
	"whatoGift/pkg/database"
	redisdb "whatoGift/pkg/database/redis"
	"whatoGift/pkg/logger"
	giftmetrics "whatoGift/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitWithLevel(cfg.App.Environment, cfg.App.LogLevel)
	logger.Info("Starting WhatoGift", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()
	giftmetrics.Init()

	// Init repo
	catalogRepo := psqlRepo.NewCatalogRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	brandRepo := psqlRepo.NewBrandRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	companyRepo := psqlRepo.NewCompanyRepository(db)

	var giftCatalog gift.CatalogRepository = catalogRepo
	var redisClient *goredis.Client
	if cfg.Catalog.SnapshotCacheTTL > 0 {
		redisClient, err = redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}

		snapshots := redisRepo.NewSnapshotRepository(redisClient)
		// a new deployment may change the snapshot shape
		if err := snapshots.Invalidate(context.Background()); err != nil {
			logger.Warn("Failed to invalidate catalog snapshot", err)
		}
		giftCatalog = gift.NewCachedCatalog(catalogRepo, snapshots, cfg.Catalog.SnapshotCacheTTL)
		logger.Info("Catalog snapshot cache enabled", "ttl", cfg.Catalog.SnapshotCacheTTL.String())
	}

	// Init service
	giftService := gift.NewGiftService(giftCatalog)
	catalogService := catalog.NewCatalogService(categoryRepo, brandRepo, productRepo)
	companyService := company.NewCompanyService(companyRepo)

	// Init handler
	giftHandler := rest.NewGiftHandler(giftService, cfg.Server.RequestTimeout)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	companyHandler := rest.NewCompanyHandler(companyService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	router.SetupOpsRoutes(e)
	api := e.Group("/api/v1")
	router.SetupGiftRoutes(api, giftHandler)
	router.SetupCatalogRoutes(api, catalogHandler)
	router.SetupCompanyRoutes(api, companyHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis close error", "error", err)
	}

	if err := database.ClosePostgres(db); err != nil {
		logger.Error("Database close error", "error", err)
	}

	logger.Info("Server stopped")
}
