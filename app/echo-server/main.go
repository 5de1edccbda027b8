package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"smartShop/app/echo-server/router"
	"smartShop/business/detector"
	"smartShop/business/inventory"
	"smartShop/business/listen"
	"smartShop/business/recommender"
	"smartShop/business/restock"
	"smartShop/business/sales"
	"smartShop/business/shop"
	userService "smartShop/business/user"
	"smartShop/domain"
	"smartShop/internal/broker"
	"smartShop/internal/middleware"
	psqlRepo "smartShop/internal/repository/postgres"
	redisRepo "smartShop/internal/repository/redis"
	speechRepo "smartShop/internal/repository/speech"
	visionRepo "smartShop/internal/repository/vision"
	"smartShop/internal/rest"
	"smartShop/pkg/config"
	"smartShop/pkg/database"
	redisdb "smartShop/pkg/database/redis"
	"smartShop/pkg/logger"
	"smartShop/pkg/utils"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting SmartShop", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Sale{},
		&domain.Restock{},
		&domain.ShopContext{},
		&domain.DetectorConfig{},
		&domain.DetectionEvent{},
		&domain.RecommenderConfig{},
	); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	// Sale events are optional; without a broker the service runs standalone
	var salePublisher sales.EventPublisher
	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.SaleTopic)
		defer producer.Close()
		salePublisher = broker.NewSaleEventPublisher(producer)
		logger.Info("Kafka producer connected", "topic", cfg.Kafka.SaleTopic)
	}

	var speechClient listen.SpeechRepository
	if cfg.Speech.APIKey != "" {
		speechClient = speechRepo.NewSpeechRepository(speechRepo.SpeechConfig{
			BaseURL: cfg.Speech.APIURL,
			APIKey:  cfg.Speech.APIKey,
		})
	}

	var visionClient inventory.VisionRepository
	if cfg.Vision.APIURL != "" {
		visionClient = visionRepo.NewVisionRepository(visionRepo.VisionConfig{
			BaseURL: cfg.Vision.APIURL,
			APIKey:  cfg.Vision.APIKey,
		})
	}

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	salesRepo := psqlRepo.NewSalesRepository(db)
	restockRepo := psqlRepo.NewRestockRepository(db)
	shopContextRepo := psqlRepo.NewShopContextRepository(db)
	detectorConfigRepo := psqlRepo.NewDetectorConfigRepository(db)
	detectionEventRepo := psqlRepo.NewDetectionEventRepository(db)
	recommenderConfigRepo := psqlRepo.NewRecommenderConfigRepository(db)

	learningCache := redisRepo.NewLearningCache(redisClient)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	usrService := userService.NewUserService(userRepo, validate, tokenRepo)
	salesService := sales.NewService(salesRepo, productRepo, learningCache, salePublisher)
	recommenderService := recommender.NewService(productRepo, salesService, recommenderConfigRepo, recommender.DefaultConfig())
	inventoryService := inventory.NewService(productRepo, visionClient)
	restockService := restock.NewService(restockRepo, productRepo)
	shopService := shop.NewService(shopContextRepo)
	detectorService := detector.NewService(detectorConfigRepo, detectionEventRepo, cfg.Detector.PairingKey)
	listenService := listen.NewService(speechClient, recommenderService)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	suggestionHandler := rest.NewSuggestionHandler(recommenderService, salesService)
	salesHandler := rest.NewSalesHandler(salesService)
	productHandler := rest.NewProductHandler(inventoryService)
	restockHandler := rest.NewRestockHandler(restockService)
	shopHandler := rest.NewShopHandler(shopService)
	detectorHandler := rest.NewDetectorHandler(detectorService)
	listenHandler := rest.NewListenHandler(listenService)
	recommenderAdminHandler := rest.NewRecommenderAdminHandler(recommenderService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(tokenRepo)
	ownerOnly := middleware.OwnerOnly()
	pairedDevice := middleware.PairedDeviceOnly(detectorService)

	// Setup routes
	router.SetupOpsRoutes(e)

	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupSuggestionRoutes(api, suggestionHandler, authRequired)
	router.SetupListenRoutes(api, listenHandler, authRequired)
	router.SetupProductRoutes(api, productHandler, authRequired)
	router.SetupSalesRoutes(api, salesHandler, authRequired)
	router.SetupRestockRoutes(api, restockHandler, authRequired)
	router.SetupShopRoutes(api, shopHandler, authRequired)
	router.SetupDetectorRoutes(api, detectorHandler, authRequired, pairedDevice)
	router.SetupRecommenderAdminRoutes(api, recommenderAdminHandler, authRequired, ownerOnly)

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

	logger.Info("Server stopped")
}
