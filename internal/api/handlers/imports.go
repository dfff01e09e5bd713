package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/api/metrics"
	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/internal/service"
)

// HandleImportProducts handles POST /api/imports/products. Required batch
// fields are validated before any work begins; per-row failures are
// itemized in the report and never abort the batch.
func HandleImportProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		importService := service.NewImportService(repos, logger)
		report, err := importService.ImportProducts(c.Request.Context(), domain.SupplierCategory(req.Category), req.Rows)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		recordIngestion("product", report)
		c.JSON(http.StatusOK, report)
	}
}

// HandleImportOrders handles POST /api/imports/orders
func HandleImportOrders(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		importService := service.NewImportService(repos, logger)
		report, err := importService.ImportOrders(c.Request.Context(), domain.SupplierCategory(req.Category), req.Rows)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		recordIngestion("order", report)
		c.JSON(http.StatusOK, report)
	}
}

func recordIngestion(kind string, report *service.BatchReport) {
	metrics.IngestedRowsTotal.WithLabelValues(kind, "imported").Add(float64(report.Imported))
	metrics.IngestedRowsTotal.WithLabelValues(kind, "failed").Add(float64(len(report.Failures)))
}
