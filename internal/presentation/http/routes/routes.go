package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tallersur/pedidos-api/internal/config"
	"github.com/tallersur/pedidos-api/internal/presentation/http/handler"
	"github.com/tallersur/pedidos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order     *handler.OrderHandler
	Payment   *handler.PaymentHandler
	Product   *handler.ProductHandler
	Pricing   *handler.PricingHandler
	Dashboard *handler.DashboardHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerOrderRoutes(v1, h)
		registerCatalogRoutes(v1, h)

		v1.GET("/dashboard", h.Dashboard.GetStats)
		v1.GET("/comprobantes/:filename", h.Payment.DownloadReceipt)
	}

	return router
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	pedidos := v1.Group("/pedidos")
	{
		pedidos.GET("", h.Order.List)
		pedidos.POST("", h.Order.Create)
		pedidos.GET("/:id", h.Order.Get)
		pedidos.POST("/:id/estado", h.Order.ChangeState)
		pedidos.DELETE("/:id", h.Order.Delete)
		pedidos.POST("/:id/pagos", h.Payment.Create)
		pedidos.POST("/:id/cobro-mp", h.Payment.CollectMercadoPago)
	}

	v1.DELETE("/pagos/:id", h.Payment.Delete)
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	productos := v1.Group("/productos")
	{
		productos.GET("", h.Product.List)
		productos.POST("", h.Product.Create)
		productos.DELETE("/:id", h.Product.Delete)
	}

	configuracion := v1.Group("/configuracion")
	{
		configuracion.GET("/precios", h.Pricing.List)
		configuracion.PUT("/precios", h.Pricing.Replace)
	}
}
