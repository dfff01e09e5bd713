package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/pkg/errors"
)

func seedProduct(t *testing.T, repos *repository.Repositories, price float64) *domain.Product {
	t.Helper()
	product := &domain.Product{
		Name:       "Gildan Heavy Cotton Tee",
		Price:      price,
		Cost:       price * 0.5,
		SKU:        "G5000-BLK-L",
		SupplierID: "supplier-1",
	}
	require.NoError(t, repos.Product.Create(context.Background(), product))
	return product
}

func seedOrder(t *testing.T, repos *repository.Repositories) *domain.Order {
	t.Helper()
	product := seedProduct(t, repos, 10.0)
	order, err := NewOrderService(repos, zap.NewNop()).Create(context.Background(), OrderCreateRequest{
		CustomerName:  "Alice Rivera",
		CustomerEmail: "alice@example.com",
		ProductID:     product.ID,
		Quantity:      1,
	})
	require.NoError(t, err)
	return order
}

func TestOrderCreate(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("snapshots price and supplier from the product", func(t *testing.T) {
		repos := newFakeRepos()
		product := seedProduct(t, repos, 20.0)
		svc := NewOrderService(repos, logger)

		order, err := svc.Create(ctx, OrderCreateRequest{
			CustomerName:  "Alice Rivera",
			CustomerEmail: "alice@example.com",
			ProductID:     product.ID,
			Quantity:      3,
		})
		require.NoError(t, err)

		assert.Equal(t, 20.0, order.UnitPrice)
		assert.Equal(t, 60.0, order.TotalAmount)
		assert.Equal(t, "supplier-1", order.SupplierID)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		assert.Regexp(t, `^TBM-[0-9A-F]{8}$`, order.OrderNumber)
	})

	t.Run("unknown product fails with NotFound and persists nothing", func(t *testing.T) {
		repos := newFakeRepos()
		svc := NewOrderService(repos, logger)

		_, err := svc.Create(ctx, OrderCreateRequest{
			CustomerName:  "Alice Rivera",
			CustomerEmail: "alice@example.com",
			ProductID:     "nonexistent",
			Quantity:      1,
		})
		require.Error(t, err)
		var notFound *errors.ErrNotFound
		assert.ErrorAs(t, err, &notFound)

		orders, err := repos.Order.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("later product price changes never touch the order", func(t *testing.T) {
		repos := newFakeRepos()
		product := seedProduct(t, repos, 20.0)
		svc := NewOrderService(repos, logger)

		order, err := svc.Create(ctx, OrderCreateRequest{
			CustomerName:  "Alice Rivera",
			CustomerEmail: "alice@example.com",
			ProductID:     product.ID,
			Quantity:      2,
		})
		require.NoError(t, err)

		product.Price = 99.0
		require.NoError(t, repos.Product.Update(ctx, product))

		stored, err := svc.Get(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, 20.0, stored.UnitPrice)
		assert.Equal(t, 40.0, stored.TotalAmount)
	})
}

func TestOrderUpdateStatus(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("any status may overwrite any other", func(t *testing.T) {
		repos := newFakeRepos()
		order := seedOrder(t, repos)
		svc := NewOrderService(repos, logger)

		for _, status := range []string{"delivered", "pending", "cancelled", "shipped"} {
			updated, err := svc.UpdateStatus(ctx, order.ID, OrderStatusUpdateRequest{Status: status})
			require.NoError(t, err)
			assert.Equal(t, domain.OrderStatus(status), updated.Status)
		}
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		repos := newFakeRepos()
		order := seedOrder(t, repos)
		svc := NewOrderService(repos, logger)

		_, err := svc.UpdateStatus(ctx, order.ID, OrderStatusUpdateRequest{Status: "refunded"})
		require.Error(t, err)
		var validation *errors.ErrValidation
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("tracking fields ride along without clearing prior values", func(t *testing.T) {
		repos := newFakeRepos()
		order := seedOrder(t, repos)
		svc := NewOrderService(repos, logger)

		tracking := "1Z999AA10123456784"
		updated, err := svc.UpdateStatus(ctx, order.ID, OrderStatusUpdateRequest{
			Status:         "shipped",
			TrackingNumber: &tracking,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.TrackingNumber)

		updated, err = svc.UpdateStatus(ctx, order.ID, OrderStatusUpdateRequest{Status: "delivered"})
		require.NoError(t, err)
		require.NotNil(t, updated.TrackingNumber)
		assert.Equal(t, tracking, *updated.TrackingNumber)
	})

	t.Run("status update never touches the price snapshot", func(t *testing.T) {
		repos := newFakeRepos()
		order := seedOrder(t, repos)
		svc := NewOrderService(repos, logger)

		updated, err := svc.UpdateStatus(ctx, order.ID, OrderStatusUpdateRequest{Status: "processing"})
		require.NoError(t, err)
		assert.Equal(t, order.UnitPrice, updated.UnitPrice)
		assert.Equal(t, order.TotalAmount, updated.TotalAmount)
	})
}
