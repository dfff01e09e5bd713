package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/domain"
)

type statusCheckRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewStatusCheckRepository creates a new status check repository
func NewStatusCheckRepository(db *mongo.Database, logger *zap.Logger) *statusCheckRepository {
	return &statusCheckRepository{
		coll:   db.Collection(collStatusChecks),
		logger: logger,
	}
}

func (r *statusCheckRepository) Create(ctx context.Context, check *domain.StatusCheck) error {
	if check.ID == "" {
		check.ID = uuid.NewString()
	}
	if check.Timestamp.IsZero() {
		check.Timestamp = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, check); err != nil {
		r.logger.Error("Failed to create status check", zap.Error(err))
		return err
	}
	return nil
}

func (r *statusCheckRepository) List(ctx context.Context) ([]*domain.StatusCheck, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to list status checks", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	checks := []*domain.StatusCheck{}
	if err := cursor.All(ctx, &checks); err != nil {
		r.logger.Error("Failed to decode status checks", zap.Error(err))
		return nil, err
	}
	return checks, nil
}
