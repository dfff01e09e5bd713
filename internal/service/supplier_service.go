package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/pkg/errors"
)

type supplierService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewSupplierService creates a new supplier service
func NewSupplierService(repos *repository.Repositories, logger *zap.Logger) *supplierService {
	return &supplierService{
		repos:  repos,
		logger: logger,
	}
}

// ResolveOrCreate looks up the first active supplier for a category and
// lazily registers a placeholder when none exists. There is no uniqueness
// constraint or lock behind this path: two concurrent batches on the same
// category can both create a supplier, and two literal category strings that
// humanize to the same display name produce separate records.
func (s *supplierService) ResolveOrCreate(ctx context.Context, category domain.SupplierCategory) (*domain.Supplier, error) {
	supplier, err := s.repos.Supplier.FirstActiveByCategory(ctx, category)
	if err == nil {
		return supplier, nil
	}
	if _, ok := err.(*errors.ErrNotFound); !ok {
		return nil, err
	}

	supplier = &domain.Supplier{
		Name:     HumanizeCategory(string(category)),
		Category: category,
		Settings: map[string]interface{}{},
		IsActive: true,
	}
	if err := s.repos.Supplier.Create(ctx, supplier); err != nil {
		return nil, err
	}
	s.logger.Info("Auto-created supplier for category",
		zap.String("category", string(category)),
		zap.String("supplier_id", supplier.ID),
	)
	return supplier, nil
}

// Create registers a supplier explicitly
func (s *supplierService) Create(ctx context.Context, req SupplierCreateRequest) (*domain.Supplier, error) {
	supplier := &domain.Supplier{
		Name:        req.Name,
		Category:    domain.SupplierCategory(req.Category),
		APIEndpoint: req.APIEndpoint,
		APIKey:      req.APIKey,
		WebhookURL:  req.WebhookURL,
		Settings:    req.Settings,
		IsActive:    true,
	}
	if supplier.Settings == nil {
		supplier.Settings = map[string]interface{}{}
	}
	if err := s.repos.Supplier.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.repos.Supplier.GetByID(ctx, id)
}

func (s *supplierService) List(ctx context.Context, activeOnly bool) ([]*domain.Supplier, error) {
	return s.repos.Supplier.List(ctx, activeOnly)
}

// Update is a full-document overwrite; the category is not revalidated
func (s *supplierService) Update(ctx context.Context, id string, req SupplierCreateRequest) (*domain.Supplier, error) {
	supplier, err := s.repos.Supplier.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Category = domain.SupplierCategory(req.Category)
	supplier.APIEndpoint = req.APIEndpoint
	supplier.APIKey = req.APIKey
	supplier.WebhookURL = req.WebhookURL
	if req.Settings != nil {
		supplier.Settings = req.Settings
	}

	if err := s.repos.Supplier.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete removes a supplier by id. Products keep their supplier_id; there
// is no cascade.
func (s *supplierService) Delete(ctx context.Context, id string) error {
	return s.repos.Supplier.Delete(ctx, id)
}

// HumanizeCategory derives a display name from a category slug:
// underscores become spaces and each word is title-cased, so
// "ss_activewear" becomes "Ss Activewear".
func HumanizeCategory(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
