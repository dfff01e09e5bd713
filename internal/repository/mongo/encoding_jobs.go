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

type encodingJobRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewEncodingJobRepository creates a new encoding job repository
func NewEncodingJobRepository(db *mongo.Database, logger *zap.Logger) *encodingJobRepository {
	return &encodingJobRepository{
		coll:   db.Collection(collEncodingJobs),
		logger: logger,
	}
}

func (r *encodingJobRepository) Create(ctx context.Context, job *domain.EncodingJob) error {
	now := time.Now().UTC()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	if job.UpdatedAt.IsZero() {
		job.UpdatedAt = now
	}

	if _, err := r.coll.InsertOne(ctx, job); err != nil {
		r.logger.Error("Failed to create encoding job", zap.Error(err))
		return err
	}
	return nil
}

func (r *encodingJobRepository) GetByID(ctx context.Context, id string) (*domain.EncodingJob, error) {
	var job domain.EncodingJob
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "encoding job", ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get encoding job by ID", zap.Error(err))
		return nil, err
	}
	return &job, nil
}

func (r *encodingJobRepository) GetByJobID(ctx context.Context, jobID string) (*domain.EncodingJob, error) {
	var job domain.EncodingJob
	err := r.coll.FindOne(ctx, bson.M{"job_id": jobID}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "encoding job", ID: jobID}
	}
	if err != nil {
		r.logger.Error("Failed to get encoding job by remote job ID", zap.Error(err))
		return nil, err
	}
	return &job, nil
}

func (r *encodingJobRepository) Update(ctx context.Context, job *domain.EncodingJob) error {
	job.UpdatedAt = time.Now().UTC()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": job.ID}, bson.M{"$set": job})
	if err != nil {
		r.logger.Error("Failed to update encoding job", zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		return &errors.ErrNotFound{Resource: "encoding job", ID: job.ID}
	}
	return nil
}

func (r *encodingJobRepository) List(ctx context.Context) ([]*domain.EncodingJob, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("Failed to list encoding jobs", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	jobs := []*domain.EncodingJob{}
	if err := cursor.All(ctx, &jobs); err != nil {
		r.logger.Error("Failed to decode encoding jobs", zap.Error(err))
		return nil, err
	}
	return jobs, nil
}
