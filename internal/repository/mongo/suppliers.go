package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/pkg/errors"
)

type supplierRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *mongo.Database, logger *zap.Logger) *supplierRepository {
	return &supplierRepository{
		coll:   db.Collection(collSuppliers),
		logger: logger,
	}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.NewString()
	}
	if supplier.CreatedAt.IsZero() {
		supplier.CreatedAt = time.Now().UTC()
	}
	if supplier.Settings == nil {
		supplier.Settings = map[string]interface{}{}
	}

	if _, err := r.coll.InsertOne(ctx, supplier); err != nil {
		r.logger.Error("Failed to create supplier", zap.Error(err))
		return err
	}
	return nil
}

func (r *supplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&supplier)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "supplier", ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get supplier by ID", zap.Error(err))
		return nil, err
	}
	return &supplier, nil
}

// FirstActiveByCategory returns the first active supplier for a category.
// No uniqueness is enforced on (name, category) pairs, so concurrent
// ingestion batches can still create duplicate suppliers.
func (r *supplierRepository) FirstActiveByCategory(ctx context.Context, category domain.SupplierCategory) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := r.coll.FindOne(ctx, bson.M{"category": category, "is_active": true}).Decode(&supplier)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "supplier", ID: string(category)}
	}
	if err != nil {
		r.logger.Error("Failed to find supplier by category", zap.Error(err))
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Supplier, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		r.logger.Error("Failed to list suppliers", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	suppliers := []*domain.Supplier{}
	if err := cursor.All(ctx, &suppliers); err != nil {
		r.logger.Error("Failed to decode suppliers", zap.Error(err))
		return nil, err
	}
	return suppliers, nil
}

func (r *supplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": supplier.ID}, bson.M{"$set": supplier})
	if err != nil {
		r.logger.Error("Failed to update supplier", zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		return &errors.ErrNotFound{Resource: "supplier", ID: supplier.ID}
	}
	return nil
}

func (r *supplierRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		r.logger.Error("Failed to delete supplier", zap.Error(err))
		return err
	}
	if result.DeletedCount == 0 {
		return &errors.ErrNotFound{Resource: "supplier", ID: id}
	}
	return nil
}
