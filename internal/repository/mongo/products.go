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

type productRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *mongo.Database, logger *zap.Logger) *productRepository {
	return &productRepository{
		coll:   db.Collection(collProducts),
		logger: logger,
	}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	if product.UpdatedAt.IsZero() {
		product.UpdatedAt = now
	}

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		r.logger.Error("Failed to create product", zap.Error(err))
		return err
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "product", ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get product by ID", zap.Error(err))
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to list products", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []*domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error("Failed to decode products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ListBySupplierID(ctx context.Context, supplierID string) ([]*domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"supplier_id": supplierID})
	if err != nil {
		r.logger.Error("Failed to list products by supplier", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []*domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error("Failed to decode products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": product.ID}, bson.M{"$set": product})
	if err != nil {
		r.logger.Error("Failed to update product", zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		return &errors.ErrNotFound{Resource: "product", ID: product.ID}
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		r.logger.Error("Failed to delete product", zap.Error(err))
		return err
	}
	if result.DeletedCount == 0 {
		return &errors.ErrNotFound{Resource: "product", ID: id}
	}
	return nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
