package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
)

func ssRow(name string, price float64) Row {
	return Row{
		"product_name": name,
		"price":        price,
		"sku":          "SKU-" + name,
		"quantity":     float64(10),
	}
}

func TestImportProducts(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("imports N minus K rows and itemizes the failures", func(t *testing.T) {
		repos := newFakeRepos()
		svc := NewImportService(repos, logger)

		rows := []Row{
			ssRow("Tee", 12.99),
			{"price": 9.99}, // missing product_name
			ssRow("Hoodie", 34.99),
			{"product_name": "Cap", "price": "not-a-number"},
			ssRow("Tank", 10.50),
		}

		report, err := svc.ImportProducts(ctx, domain.CategorySSActivewear, rows)
		require.NoError(t, err)

		assert.Equal(t, 3, report.Imported)
		require.Len(t, report.Failures, 2)
		assert.Equal(t, 1, report.Failures[0].Index)
		assert.Equal(t, 3, report.Failures[1].Index)
		assert.NotEmpty(t, report.Failures[0].Reason)

		products, err := repos.Product.List(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("auto-creates the supplier and attributes every row to it", func(t *testing.T) {
		repos := newFakeRepos()
		svc := NewImportService(repos, logger)

		report, err := svc.ImportProducts(ctx, domain.CategorySSActivewear, []Row{
			ssRow("Tee", 12.99),
			ssRow("Hoodie", 34.99),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, report.Imported)

		suppliers, err := repos.Supplier.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, suppliers, 1)
		assert.Equal(t, "Ss Activewear", suppliers[0].Name)

		products, err := repos.Product.ListBySupplierID(ctx, suppliers[0].ID)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("re-ingesting the same batch doubles the catalog", func(t *testing.T) {
		repos := newFakeRepos()
		svc := NewImportService(repos, logger)

		rows := []Row{ssRow("Tee", 12.99), ssRow("Hoodie", 34.99)}

		for i := 0; i < 2; i++ {
			report, err := svc.ImportProducts(ctx, domain.CategorySSActivewear, rows)
			require.NoError(t, err)
			assert.Equal(t, 2, report.Imported)
		}

		products, err := repos.Product.List(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 4)

		suppliers, err := repos.Supplier.List(ctx, false)
		require.NoError(t, err)
		assert.Len(t, suppliers, 1)
	})

	t.Run("all rows failing still returns a report, not an error", func(t *testing.T) {
		repos := newFakeRepos()
		svc := NewImportService(repos, logger)

		report, err := svc.ImportProducts(ctx, domain.CategorySSActivewear, []Row{
			{"price": 1.0},
			{"price": 2.0},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, report.Imported)
		assert.Len(t, report.Failures, 2)
	})
}

func TestImportOrders(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("imports orders with generated order numbers", func(t *testing.T) {
		repos := newFakeRepos()
		svc := NewImportService(repos, logger)

		report, err := svc.ImportOrders(ctx, domain.CategorySanMar, []Row{
			{
				"CustomerName":  "Bob Chen",
				"CustomerEmail": "bob@example.com",
				"Quantity":      float64(2),
				"UnitPrice":     24.50,
				"OrderNumber":   "SM-77",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, report.Imported)

		orders, err := repos.Order.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Regexp(t, `^TBM-[0-9A-F]{8}$`, orders[0].OrderNumber)
		assert.Equal(t, 49.0, orders[0].TotalAmount)
		assert.NotEmpty(t, orders[0].SupplierID)
	})

	t.Run("rows with non-positive quantity are itemized failures", func(t *testing.T) {
		repos := newFakeRepos()
		svc := NewImportService(repos, logger)

		report, err := svc.ImportOrders(ctx, domain.CategoryDirect, []Row{
			{"customer_name": "Dana Fox", "quantity": float64(0), "unit_price": 5.0},
			{"customer_name": "Eli Gray", "quantity": float64(1), "unit_price": 5.0},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, report.Imported)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, 0, report.Failures[0].Index)
	})
}
