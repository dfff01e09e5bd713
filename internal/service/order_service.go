package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/pkg/errors"
)

type orderService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repos *repository.Repositories, logger *zap.Logger) *orderService {
	return &orderService{
		repos:  repos,
		logger: logger,
	}
}

// Create attributes a new order to its product: the product's current price
// and supplier linkage are copied onto the order and the total is computed
// from the requested quantity. Both price fields are snapshots; later
// product price changes never touch them. Fails with NotFound and persists
// nothing when the product does not exist. The product's supplier_id is
// copied without re-resolving the supplier record.
func (s *orderService) Create(ctx context.Context, req OrderCreateRequest) (*domain.Order, error) {
	product, err := s.repos.Product.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderNumber:     newOrderNumber(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		ProductID:       product.ID,
		SupplierID:      product.SupplierID,
		Quantity:        req.Quantity,
		UnitPrice:       product.Price,
		TotalAmount:     product.Price * float64(req.Quantity),
		Status:          domain.OrderStatusPending,
		Notes:           req.Notes,
	}
	if order.ShippingAddress == nil {
		order.ShippingAddress = map[string]interface{}{}
	}

	if err := s.repos.Order.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repos.Order.GetByID(ctx, id)
}

func (s *orderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repos.Order.List(ctx)
}

// UpdateStatus overwrites the order status. Only enum membership is
// validated; transitions are free-form, including moving delivered back to
// pending. Price fields are never touched here.
func (s *orderService) UpdateStatus(ctx context.Context, id string, req OrderStatusUpdateRequest) (*domain.Order, error) {
	status := domain.OrderStatus(req.Status)
	if !status.IsValid() {
		return nil, &errors.ErrValidation{Field: "status", Message: fmt.Sprintf("unknown status %q", req.Status)}
	}

	order, err := s.repos.Order.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if req.TrackingNumber != nil {
		order.TrackingNumber = req.TrackingNumber
	}
	if req.SupplierOrderID != nil {
		order.SupplierOrderID = req.SupplierOrderID
	}
	if req.Notes != nil {
		order.Notes = req.Notes
	}

	if err := s.repos.Order.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	return s.repos.Order.Delete(ctx, id)
}

// newOrderNumber generates a human-readable order number from a random
// suffix, e.g. TBM-9F2C41AB
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("TBM-%s", suffix)
}
