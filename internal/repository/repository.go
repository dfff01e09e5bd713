package repository

import (
	"context"

	"github.com/tampabaymerch/backoffice/internal/domain"
)

// SupplierRepository persists supplier records
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	FirstActiveByCategory(ctx context.Context, category domain.SupplierCategory) (*domain.Supplier, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository persists product records
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ListBySupplierID(ctx context.Context, supplierID string) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// OrderRepository persists order records
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
	RevenueByStatuses(ctx context.Context, statuses []domain.OrderStatus) (float64, error)
}

// StatusCheckRepository persists client liveness pings
type StatusCheckRepository interface {
	Create(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context) ([]*domain.StatusCheck, error)
}

// EncodingJobRepository persists media-encoding job records
type EncodingJobRepository interface {
	Create(ctx context.Context, job *domain.EncodingJob) error
	GetByID(ctx context.Context, id string) (*domain.EncodingJob, error)
	GetByJobID(ctx context.Context, jobID string) (*domain.EncodingJob, error)
	Update(ctx context.Context, job *domain.EncodingJob) error
	List(ctx context.Context) ([]*domain.EncodingJob, error)
}

// Repositories aggregates all repositories
type Repositories struct {
	Supplier    SupplierRepository
	Product     ProductRepository
	Order       OrderRepository
	StatusCheck StatusCheckRepository
	EncodingJob EncodingJobRepository
}
