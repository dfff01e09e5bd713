package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
)

type importService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewImportService creates a new bulk ingestion service
func NewImportService(repos *repository.Repositories, logger *zap.Logger) *importService {
	return &importService{
		repos:  repos,
		logger: logger,
	}
}

// ImportProducts ingests a batch of raw supplier product rows. The owning
// supplier is resolved (or lazily created) once per batch; each row is then
// mapped and persisted independently. A failed row is logged, itemized in
// the report and skipped; the batch never aborts. Rows are processed in
// source order and nothing is deduplicated against existing records, so
// re-ingesting an identical batch doubles the stored products.
func (s *importService) ImportProducts(ctx context.Context, category domain.SupplierCategory, rows []Row) (*BatchReport, error) {
	supplierSvc := NewSupplierService(s.repos, s.logger)
	supplier, err := supplierSvc.ResolveOrCreate(ctx, category)
	if err != nil {
		return nil, err
	}

	report := &BatchReport{}
	for i, row := range rows {
		product, err := mapProduct(category, row)
		if err != nil {
			s.recordFailure(report, i, err, "product")
			continue
		}

		product.SupplierID = supplier.ID
		if err := s.repos.Product.Create(ctx, product); err != nil {
			s.recordFailure(report, i, err, "product")
			continue
		}
		report.Imported++
	}
	return report, nil
}

// ImportOrders ingests a batch of raw supplier order rows with the same
// skip-and-continue semantics as ImportProducts
func (s *importService) ImportOrders(ctx context.Context, category domain.SupplierCategory, rows []Row) (*BatchReport, error) {
	supplierSvc := NewSupplierService(s.repos, s.logger)
	supplier, err := supplierSvc.ResolveOrCreate(ctx, category)
	if err != nil {
		return nil, err
	}

	report := &BatchReport{}
	for i, row := range rows {
		order, err := mapOrder(category, row)
		if err != nil {
			s.recordFailure(report, i, err, "order")
			continue
		}

		order.SupplierID = supplier.ID
		order.OrderNumber = newOrderNumber()
		if err := s.repos.Order.Create(ctx, order); err != nil {
			s.recordFailure(report, i, err, "order")
			continue
		}
		report.Imported++
	}
	return report, nil
}

func (s *importService) recordFailure(report *BatchReport, index int, err error, kind string) {
	s.logger.Warn("Skipping row in ingestion batch",
		zap.String("kind", kind),
		zap.Int("row", index),
		zap.Error(err),
	)
	report.Failures = append(report.Failures, RowFailure{Index: index, Reason: err.Error()})
}
