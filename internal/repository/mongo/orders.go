package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/pkg/errors"
)

type orderRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *mongo.Database, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		coll:   db.Collection(collOrders),
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	now := time.Now().UTC()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		r.logger.Error("Failed to create order", zap.Error(err))
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get order by ID", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("Failed to list orders", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []*domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error("Failed to decode orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	order.UpdatedAt = time.Now().UTC()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": order.ID}, bson.M{"$set": order})
	if err != nil {
		r.logger.Error("Failed to update order", zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		return &errors.ErrNotFound{Resource: "order", ID: order.ID}
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		r.logger.Error("Failed to delete order", zap.Error(err))
		return err
	}
	if result.DeletedCount == 0 {
		return &errors.ErrNotFound{Resource: "order", ID: id}
	}
	return nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *orderRepository) CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": status})
}

// RevenueByStatuses sums total_amount across orders in any of the given
// statuses using a $match/$group aggregation
func (r *orderRepository) RevenueByStatuses(ctx context.Context, statuses []domain.OrderStatus) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": bson.M{"$in": statuses}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total_amount"}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error("Failed to aggregate revenue", zap.Error(err))
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		r.logger.Error("Failed to decode revenue aggregation", zap.Error(err))
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
