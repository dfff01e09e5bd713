package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/config"
	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/internal/service"
)

// HandleCreateOrder handles POST /api/orders. The referenced product's
// price and supplier are snapshotted onto the order at creation time.
func HandleCreateOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.OrderCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		orderService := service.NewOrderService(repos, logger)
		order, err := orderService.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// HandleListOrders handles GET /api/orders, newest first
func HandleListOrders(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderService := service.NewOrderService(repos, logger)
		orders, err := orderService.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// HandleGetOrder handles GET /api/orders/:id
func HandleGetOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderService := service.NewOrderService(repos, logger)
		order, err := orderService.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// HandleUpdateOrderStatus handles PUT /api/orders/:id/status. An order
// moving to shipped with a tracking number and a remote order id also gets
// a best-effort fulfillment push to the storefront; a push failure is
// logged and never fails the status update.
func HandleUpdateOrderStatus(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.OrderStatusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		orderService := service.NewOrderService(repos, logger)
		order, err := orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		if order.Status == domain.OrderStatusShipped && order.TrackingNumber != nil && order.SupplierOrderID != nil {
			shopifyService := service.NewShopifyService(cfg, repos, logger)
			if err := shopifyService.PushFulfillment(c.Request.Context(), order); err != nil {
				logger.Warn("Failed to push fulfillment to storefront",
					zap.String("order_id", order.ID),
					zap.Error(err),
				)
			}
		}

		c.JSON(http.StatusOK, order)
	}
}

// HandleDeleteOrder handles DELETE /api/orders/:id
func HandleDeleteOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderService := service.NewOrderService(repos, logger)
		if err := orderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
