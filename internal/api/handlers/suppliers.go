package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/internal/service"
)

// HandleCreateSupplier handles POST /api/suppliers
func HandleCreateSupplier(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SupplierCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		supplierService := service.NewSupplierService(repos, logger)
		supplier, err := supplierService.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, supplier)
	}
}

// HandleListSuppliers handles GET /api/suppliers
func HandleListSuppliers(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("active_only") == "true"

		supplierService := service.NewSupplierService(repos, logger)
		suppliers, err := supplierService.List(c.Request.Context(), activeOnly)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, suppliers)
	}
}

// HandleGetSupplier handles GET /api/suppliers/:id
func HandleGetSupplier(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplierService := service.NewSupplierService(repos, logger)
		supplier, err := supplierService.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, supplier)
	}
}

// HandleListSupplierProducts handles GET /api/suppliers/:id/products
func HandleListSupplierProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplierService := service.NewSupplierService(repos, logger)
		if _, err := supplierService.Get(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}

		products, err := repos.Product.ListBySupplierID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// HandleUpdateSupplier handles PUT /api/suppliers/:id
func HandleUpdateSupplier(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SupplierCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		supplierService := service.NewSupplierService(repos, logger)
		supplier, err := supplierService.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, supplier)
	}
}

// HandleDeleteSupplier handles DELETE /api/suppliers/:id
func HandleDeleteSupplier(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplierService := service.NewSupplierService(repos, logger)
		if err := supplierService.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
	}
}
