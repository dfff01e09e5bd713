package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/config"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/internal/service"
	"github.com/tampabaymerch/backoffice/internal/shopify"
)

// HandleShopifyOrderWebhook handles POST /api/webhooks/shopify/orders/create
// and /orders/paid. The payload is mapped into the canonical order shape;
// delivery is not deduplicated, so a redelivered webhook creates a second
// order.
func HandleShopifyOrderWebhook(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger, paid bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload shopify.RemoteOrder
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
			return
		}

		shopifyService := service.NewShopifyService(cfg, repos, logger)
		order, err := shopifyService.IngestWebhookOrder(c.Request.Context(), payload, paid)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		logger.Info("Ingested storefront order webhook",
			zap.Int64("remote_order_id", payload.ID),
			zap.String("order_id", order.ID),
			zap.Bool("paid", paid),
		)
		c.JSON(http.StatusOK, gin.H{"order_id": order.ID})
	}
}

// HandleShopifyAckWebhook acknowledges webhook topics the back-office
// registers but does not act on
func HandleShopifyAckWebhook(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Debug("Acknowledged storefront webhook", zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// HandleZencoderCompletion handles POST /api/webhooks/zencoder/job_complete.
// The payload is stored verbatim for later inspection.
func HandleZencoderCompletion(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
			return
		}

		mediaService := service.NewMediaService(cfg, repos, logger)
		job, err := mediaService.HandleCompletion(c.Request.Context(), payload)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"job_id": job.ID})
	}
}
