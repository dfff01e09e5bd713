package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/repository"
)

// NewRepositories creates all repositories backed by the given database
func NewRepositories(db *mongo.Database, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Supplier:    NewSupplierRepository(db, logger),
		Product:     NewProductRepository(db, logger),
		Order:       NewOrderRepository(db, logger),
		StatusCheck: NewStatusCheckRepository(db, logger),
		EncodingJob: NewEncodingJobRepository(db, logger),
	}
}
