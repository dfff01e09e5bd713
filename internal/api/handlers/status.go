package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
)

// StatusCheckCreateRequest registers a client liveness ping
type StatusCheckCreateRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// HandleRoot handles GET /api/
func HandleRoot() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Dropshipping Management API",
			"version": "1.0.0",
		})
	}
}

// HandleCreateStatusCheck handles POST /api/status
func HandleCreateStatusCheck(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StatusCheckCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		check := &domain.StatusCheck{ClientName: req.ClientName}
		if err := repos.StatusCheck.Create(c.Request.Context(), check); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, check)
	}
}

// HandleListStatusChecks handles GET /api/status
func HandleListStatusChecks(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		checks, err := repos.StatusCheck.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, checks)
	}
}

// HandleAnalyticsOverview handles GET /api/analytics/overview. Revenue sums
// total_amount across shipped and delivered orders via the store's
// aggregation support.
func HandleAnalyticsOverview(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		totalProducts, err := repos.Product.Count(ctx)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		totalOrders, err := repos.Order.Count(ctx)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		pendingOrders, err := repos.Order.CountByStatus(ctx, domain.OrderStatusPending)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		processingOrders, err := repos.Order.CountByStatus(ctx, domain.OrderStatusProcessing)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		totalRevenue, err := repos.Order.RevenueByStatuses(ctx, []domain.OrderStatus{
			domain.OrderStatusShipped,
			domain.OrderStatusDelivered,
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_products":    totalProducts,
			"total_orders":      totalOrders,
			"pending_orders":    pendingOrders,
			"processing_orders": processingOrders,
			"total_revenue":     totalRevenue,
		})
	}
}
