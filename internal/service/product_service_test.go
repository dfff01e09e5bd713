package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/pkg/errors"
)

func TestProductCreate(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("persists a product for an existing supplier", func(t *testing.T) {
		repos := newFakeRepos()
		supplier := &domain.Supplier{Name: "S&S Activewear", Category: domain.CategorySSActivewear, IsActive: true}
		require.NoError(t, repos.Supplier.Create(ctx, supplier))

		svc := NewProductService(repos, logger)
		product, err := svc.Create(ctx, ProductCreateRequest{
			Name:       "Gildan Heavy Cotton Tee",
			Price:      12.99,
			SKU:        "G5000-BLK-L",
			SupplierID: supplier.ID,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, product.ID)
		assert.Equal(t, domain.ProductTypePhysical, product.ProductType)
		assert.Equal(t, domain.ProductStatusActive, product.Status)
	})

	t.Run("unknown supplier fails with NotFound and persists nothing", func(t *testing.T) {
		repos := newFakeRepos()
		svc := NewProductService(repos, logger)

		_, err := svc.Create(ctx, ProductCreateRequest{
			Name:       "Orphan Tee",
			Price:      9.99,
			SKU:        "ORPHAN-1",
			SupplierID: "nonexistent",
		})
		require.Error(t, err)
		var notFound *errors.ErrNotFound
		assert.ErrorAs(t, err, &notFound)

		products, err := repos.Product.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("unrecognized product type defaults to physical", func(t *testing.T) {
		repos := newFakeRepos()
		supplier := &domain.Supplier{Name: "Direct", Category: domain.CategoryDirect, IsActive: true}
		require.NoError(t, repos.Supplier.Create(ctx, supplier))

		svc := NewProductService(repos, logger)
		product, err := svc.Create(ctx, ProductCreateRequest{
			Name:        "Mystery Item",
			Price:       5.00,
			SKU:         "MYST-1",
			SupplierID:  supplier.ID,
			ProductType: "subscription",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ProductTypePhysical, product.ProductType)
	})
}

func TestProductUpdate(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("full overwrite preserves id and created_at", func(t *testing.T) {
		repos := newFakeRepos()
		supplier := &domain.Supplier{Name: "Direct", Category: domain.CategoryDirect, IsActive: true}
		require.NoError(t, repos.Supplier.Create(ctx, supplier))

		svc := NewProductService(repos, logger)
		created, err := svc.Create(ctx, ProductCreateRequest{
			Name:       "Stadium Cup 24oz",
			Price:      6.00,
			SKU:        "CUP-24",
			SupplierID: supplier.ID,
		})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, ProductCreateRequest{
			Name:       "Stadium Cup 32oz",
			Price:      8.00,
			SKU:        "CUP-32",
			SupplierID: supplier.ID,
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, "Stadium Cup 32oz", updated.Name)
		assert.Equal(t, 8.00, updated.Price)
	})

	t.Run("updating a missing product fails with NotFound", func(t *testing.T) {
		svc := NewProductService(newFakeRepos(), logger)
		_, err := svc.Update(ctx, "nonexistent", ProductCreateRequest{
			Name: "x", Price: 1, SKU: "x", SupplierID: "s",
		})
		var notFound *errors.ErrNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}
