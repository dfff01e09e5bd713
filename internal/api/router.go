package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/api/handlers"
	"github.com/tampabaymerch/backoffice/internal/api/metrics"
	"github.com/tampabaymerch/backoffice/internal/api/middleware"
	"github.com/tampabaymerch/backoffice/internal/config"
	"github.com/tampabaymerch/backoffice/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(metrics.HTTPMiddleware())

	// Health check and metrics
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/", handlers.HandleRoot())
		api.POST("/status", handlers.HandleCreateStatusCheck(repos, logger))
		api.GET("/status", handlers.HandleListStatusChecks(repos, logger))

		api.POST("/products", handlers.HandleCreateProduct(repos, logger))
		api.GET("/products", handlers.HandleListProducts(repos, logger))
		api.GET("/products/:id", handlers.HandleGetProduct(repos, logger))
		api.PUT("/products/:id", handlers.HandleUpdateProduct(repos, logger))
		api.DELETE("/products/:id", handlers.HandleDeleteProduct(repos, logger))

		api.POST("/orders", handlers.HandleCreateOrder(repos, logger))
		api.GET("/orders", handlers.HandleListOrders(repos, logger))
		api.GET("/orders/:id", handlers.HandleGetOrder(repos, logger))
		api.PUT("/orders/:id/status", handlers.HandleUpdateOrderStatus(cfg, repos, logger))
		api.DELETE("/orders/:id", handlers.HandleDeleteOrder(repos, logger))

		api.GET("/analytics/overview", handlers.HandleAnalyticsOverview(repos, logger))

		// Back-office routes guarded by the admin API key
		adminRoutes := api.Group("")
		adminRoutes.Use(middleware.AdminAuth(cfg.API.AdminKeyHash, logger))
		{
			adminRoutes.POST("/suppliers", handlers.HandleCreateSupplier(repos, logger))
			adminRoutes.GET("/suppliers", handlers.HandleListSuppliers(repos, logger))
			adminRoutes.GET("/suppliers/:id", handlers.HandleGetSupplier(repos, logger))
			adminRoutes.GET("/suppliers/:id/products", handlers.HandleListSupplierProducts(repos, logger))
			adminRoutes.PUT("/suppliers/:id", handlers.HandleUpdateSupplier(repos, logger))
			adminRoutes.DELETE("/suppliers/:id", handlers.HandleDeleteSupplier(repos, logger))

			adminRoutes.POST("/imports/products", handlers.HandleImportProducts(repos, logger))
			adminRoutes.POST("/imports/orders", handlers.HandleImportOrders(repos, logger))

			adminRoutes.POST("/shopify/sync/products", handlers.HandleSyncProducts(cfg, repos, logger))
			adminRoutes.GET("/shopify/orders", handlers.HandlePullOrders(cfg, repos, logger))
			adminRoutes.POST("/shopify/orders/:id/push", handlers.HandlePushOrder(cfg, repos, logger))
			adminRoutes.POST("/shopify/webhooks/setup", handlers.HandleSetupWebhooks(cfg, repos, logger))

			adminRoutes.POST("/media/hero-video", handlers.HandleCreateHeroVideo(cfg, repos, logger))
			adminRoutes.POST("/media/products/:id/video", handlers.HandleCreateProductVideo(cfg, repos, logger))
			adminRoutes.POST("/media/images/optimize", handlers.HandleOptimizeImages(cfg, repos, logger))
			adminRoutes.POST("/media/social/:content_type", handlers.HandleCreateSocialContent(cfg, repos, logger))
			adminRoutes.GET("/media/jobs", handlers.HandleListEncodingJobs(repos, logger))
			adminRoutes.GET("/media/jobs/:id", handlers.HandleGetEncodingJob(cfg, repos, logger))
		}

		// Inbound webhooks from external platforms
		webhooks := api.Group("/webhooks")
		{
			webhooks.POST("/shopify/orders/create", handlers.HandleShopifyOrderWebhook(cfg, repos, logger, false))
			webhooks.POST("/shopify/orders/paid", handlers.HandleShopifyOrderWebhook(cfg, repos, logger, true))
			webhooks.POST("/shopify/orders/updated", handlers.HandleShopifyAckWebhook(logger))
			webhooks.POST("/shopify/orders/fulfilled", handlers.HandleShopifyAckWebhook(logger))
			webhooks.POST("/shopify/products/create", handlers.HandleShopifyAckWebhook(logger))
			webhooks.POST("/shopify/products/update", handlers.HandleShopifyAckWebhook(logger))
			webhooks.POST("/zencoder/job_complete", handlers.HandleZencoderCompletion(cfg, repos, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
