package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/pkg/errors"
)

// In-memory repositories backing the service tests. Insertion order is
// preserved so batch-order assertions hold.

type fakeSupplierRepo struct {
	suppliers []*domain.Supplier
}

func (r *fakeSupplierRepo) Create(_ context.Context, supplier *domain.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.NewString()
	}
	supplier.CreatedAt = time.Now().UTC()
	r.suppliers = append(r.suppliers, supplier)
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id string) (*domain.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "supplier", ID: id}
}

func (r *fakeSupplierRepo) FirstActiveByCategory(_ context.Context, category domain.SupplierCategory) (*domain.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Category == category && s.IsActive {
			return s, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "supplier", ID: string(category)}
}

func (r *fakeSupplierRepo) List(_ context.Context, activeOnly bool) ([]*domain.Supplier, error) {
	var out []*domain.Supplier
	for _, s := range r.suppliers {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, supplier *domain.Supplier) error {
	for i, s := range r.suppliers {
		if s.ID == supplier.ID {
			r.suppliers[i] = supplier
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "supplier", ID: supplier.ID}
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.suppliers {
		if s.ID == id {
			r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "supplier", ID: id}
}

type fakeProductRepo struct {
	products []*domain.Product
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	product.CreatedAt = time.Now().UTC()
	product.UpdatedAt = product.CreatedAt
	r.products = append(r.products, product)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "product", ID: id}
}

func (r *fakeProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) ListBySupplierID(_ context.Context, supplierID string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.products {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			product.UpdatedAt = time.Now().UTC()
			r.products[i] = product
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "product", ID: product.ID}
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "product", ID: id}
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type fakeOrderRepo struct {
	orders []*domain.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	order.CreatedAt = time.Now().UTC()
	order.UpdatedAt = order.CreatedAt
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			copied := *o
			return &copied, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "order", ID: id}
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	return r.orders, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *domain.Order) error {
	for i, o := range r.orders {
		if o.ID == order.ID {
			order.UpdatedAt = time.Now().UTC()
			r.orders[i] = order
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "order", ID: order.ID}
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "order", ID: id}
}

func (r *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) CountByStatus(_ context.Context, status domain.OrderStatus) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeOrderRepo) RevenueByStatuses(_ context.Context, statuses []domain.OrderStatus) (float64, error) {
	var total float64
	for _, o := range r.orders {
		for _, s := range statuses {
			if o.Status == s {
				total += o.TotalAmount
				break
			}
		}
	}
	return total, nil
}

type fakeStatusCheckRepo struct {
	checks []*domain.StatusCheck
}

func (r *fakeStatusCheckRepo) Create(_ context.Context, check *domain.StatusCheck) error {
	if check.ID == "" {
		check.ID = uuid.NewString()
	}
	check.Timestamp = time.Now().UTC()
	r.checks = append(r.checks, check)
	return nil
}

func (r *fakeStatusCheckRepo) List(_ context.Context) ([]*domain.StatusCheck, error) {
	return r.checks, nil
}

type fakeEncodingJobRepo struct {
	jobs []*domain.EncodingJob
}

func (r *fakeEncodingJobRepo) Create(_ context.Context, job *domain.EncodingJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now().UTC()
	job.UpdatedAt = job.CreatedAt
	r.jobs = append(r.jobs, job)
	return nil
}

func (r *fakeEncodingJobRepo) GetByID(_ context.Context, id string) (*domain.EncodingJob, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "encoding job", ID: id}
}

func (r *fakeEncodingJobRepo) GetByJobID(_ context.Context, jobID string) (*domain.EncodingJob, error) {
	for _, j := range r.jobs {
		if j.JobID == jobID {
			return j, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "encoding job", ID: jobID}
}

func (r *fakeEncodingJobRepo) Update(_ context.Context, job *domain.EncodingJob) error {
	for i, j := range r.jobs {
		if j.ID == job.ID {
			job.UpdatedAt = time.Now().UTC()
			r.jobs[i] = job
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "encoding job", ID: job.ID}
}

func (r *fakeEncodingJobRepo) List(_ context.Context) ([]*domain.EncodingJob, error) {
	return r.jobs, nil
}

func newFakeRepos() *repository.Repositories {
	return &repository.Repositories{
		Supplier:    &fakeSupplierRepo{},
		Product:     &fakeProductRepo{},
		Order:       &fakeOrderRepo{},
		StatusCheck: &fakeStatusCheckRepo{},
		EncodingJob: &fakeEncodingJobRepo{},
	}
}
