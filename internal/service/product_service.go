package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
)

type productService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(repos *repository.Repositories, logger *zap.Logger) *productService {
	return &productService{
		repos:  repos,
		logger: logger,
	}
}

// Create persists a product after verifying the owning supplier exists.
// Fails with NotFound and persists nothing for an unknown supplier_id.
func (s *productService) Create(ctx context.Context, req ProductCreateRequest) (*domain.Product, error) {
	if _, err := s.repos.Supplier.GetByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	product := buildProduct(req)
	if err := s.repos.Product.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repos.Product.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repos.Product.List(ctx)
}

// Update is a full-document overwrite: last writer wins, no version check
func (s *productService) Update(ctx context.Context, id string, req ProductCreateRequest) (*domain.Product, error) {
	existing, err := s.repos.Product.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product := buildProduct(req)
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt

	if err := s.repos.Product.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product by id. Orders keep their snapshotted product
// reference; there is no cascade.
func (s *productService) Delete(ctx context.Context, id string) error {
	return s.repos.Product.Delete(ctx, id)
}

func buildProduct(req ProductCreateRequest) *domain.Product {
	productType := domain.ProductType(req.ProductType)
	if !productType.IsValid() {
		productType = domain.ProductTypePhysical
	}

	product := &domain.Product{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Cost:              req.Cost,
		SKU:               req.SKU,
		SupplierID:        req.SupplierID,
		SupplierProductID: req.SupplierProductID,
		SupplierVariantID: req.SupplierVariantID,
		ImageURL:          req.ImageURL,
		Category:          req.Category,
		Tags:              req.Tags,
		ProductType:       productType,
		Status:            domain.ProductStatusActive,
		StockQuantity:     req.StockQuantity,
		Weight:            req.Weight,
		AffiliateURL:      req.AffiliateURL,
		CommissionRate:    req.CommissionRate,
	}
	if req.Dimensions != nil {
		product.Dimensions = &domain.Dimensions{
			Length: req.Dimensions.Length,
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
			Unit:   req.Dimensions.Unit,
		}
	}
	return product
}
