package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/config"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/internal/service"
)

// HandleSyncProducts handles POST /api/shopify/sync/products
func HandleSyncProducts(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopifyService := service.NewShopifyService(cfg, repos, logger)
		report, err := shopifyService.SyncProducts(c.Request.Context())
		if err != nil {
			// Best-effort error payload, not a transport failure
			logger.Error("Product sync failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, report)
	}
}

// HandlePullOrders handles GET /api/shopify/orders
func HandlePullOrders(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopifyService := service.NewShopifyService(cfg, repos, logger)
		orders, err := shopifyService.PullOrders(c.Request.Context(), c.DefaultQuery("status", "any"))
		if err != nil {
			logger.Error("Order pull failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// HandlePushOrder handles POST /api/shopify/orders/:id/push
func HandlePushOrder(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopifyService := service.NewShopifyService(cfg, repos, logger)
		order, err := shopifyService.PushOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// HandleSetupWebhooks handles POST /api/shopify/webhooks/setup
func HandleSetupWebhooks(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopifyService := service.NewShopifyService(cfg, repos, logger)
		created, err := shopifyService.SetupWebhooks(c.Request.Context())
		if err != nil {
			logger.Error("Webhook setup failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"created": created})
	}
}
