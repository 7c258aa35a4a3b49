package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tallersur/pedidos-api/internal/application/service"
	"github.com/tallersur/pedidos-api/internal/config"
	"github.com/tallersur/pedidos-api/internal/infrastructure/database"
	"github.com/tallersur/pedidos-api/internal/infrastructure/repository"
	"github.com/tallersur/pedidos-api/internal/presentation/http/handler"
	"github.com/tallersur/pedidos-api/internal/presentation/http/routes"
	"github.com/tallersur/pedidos-api/pkg/mercadopago"
	"github.com/tallersur/pedidos-api/pkg/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize receipt storage
	receiptStore, err := storage.NewLocalStore(cfg.Storage.Path, cfg.Storage.UploadMaxSize)
	if err != nil {
		log.Fatalf("Failed to initialize receipt storage: %v", err)
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	productRepo := repository.NewProductRepository(db)
	meterPriceRepo := repository.NewMeterPriceRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize the MercadoPago gateway when a token is configured
	var gateway service.PaymentGateway
	if cfg.MercadoPago.AccessToken != "" {
		mpGateway, err := mercadopago.NewGateway(cfg.MercadoPago.AccessToken)
		if err != nil {
			log.Printf("Warning: Failed to initialize MercadoPago gateway: %v", err)
		} else {
			gateway = mpGateway
		}
	} else {
		log.Println("MercadoPago access token not configured; electronic collection disabled")
	}

	// Initialize services
	orderService := service.NewOrderService(orderRepo, productRepo, meterPriceRepo, receiptStore)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, receiptStore)
	productService := service.NewProductService(productRepo)
	pricingService := service.NewPricingService(meterPriceRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	mercadoPagoService := service.NewMercadoPagoService(orderRepo, paymentRepo, gateway)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:     handler.NewOrderHandler(orderService),
		Payment:   handler.NewPaymentHandler(paymentService, mercadoPagoService),
		Product:   handler.NewProductHandler(productService),
		Pricing:   handler.NewPricingHandler(pricingService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
