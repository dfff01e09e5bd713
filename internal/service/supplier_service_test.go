package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
)

func TestHumanizeCategory(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"ss_activewear", "Ss Activewear"},
		{"sanmar", "Sanmar"},
		{"amazon_affiliate", "Amazon Affiliate"},
		{"print_on_demand", "Print On Demand"},
		{"DIRECT", "Direct"},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeCategory(tt.slug))
		})
	}
}

func TestResolveOrCreate(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("creates a placeholder supplier when none exists", func(t *testing.T) {
		repos := newFakeRepos()
		svc := NewSupplierService(repos, logger)

		supplier, err := svc.ResolveOrCreate(ctx, domain.CategorySSActivewear)
		require.NoError(t, err)

		assert.Equal(t, "Ss Activewear", supplier.Name)
		assert.Equal(t, domain.CategorySSActivewear, supplier.Category)
		assert.True(t, supplier.IsActive)
		assert.NotEmpty(t, supplier.ID)
	})

	t.Run("reuses the existing active supplier", func(t *testing.T) {
		repos := newFakeRepos()
		svc := NewSupplierService(repos, logger)

		first, err := svc.ResolveOrCreate(ctx, domain.CategorySanMar)
		require.NoError(t, err)
		second, err := svc.ResolveOrCreate(ctx, domain.CategorySanMar)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		suppliers, err := repos.Supplier.List(ctx, false)
		require.NoError(t, err)
		assert.Len(t, suppliers, 1)
	})

	t.Run("skips inactive suppliers and creates a fresh one", func(t *testing.T) {
		repos := newFakeRepos()
		require.NoError(t, repos.Supplier.Create(ctx, &domain.Supplier{
			Name:     "Retired Vendor",
			Category: domain.CategoryDirect,
			IsActive: false,
		}))

		svc := NewSupplierService(repos, logger)
		supplier, err := svc.ResolveOrCreate(ctx, domain.CategoryDirect)
		require.NoError(t, err)
		assert.NotEqual(t, "Retired Vendor", supplier.Name)
		assert.True(t, supplier.IsActive)
	})
}

func TestSupplierCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewSupplierService(newFakeRepos(), zap.NewNop())

	created, err := svc.Create(ctx, SupplierCreateRequest{
		Name:     "S&S Activewear",
		Category: "ss_activewear",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.NotNil(t, created.Settings)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "S&S Activewear", fetched.Name)

	updated, err := svc.Update(ctx, created.ID, SupplierCreateRequest{
		Name:     "S&S Activewear East",
		Category: "ss_activewear",
	})
	require.NoError(t, err)
	assert.Equal(t, "S&S Activewear East", updated.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.Error(t, err)
}
