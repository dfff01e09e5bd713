package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tampabaymerch/backoffice/internal/config"
)

// Collection names
const (
	collSuppliers    = "suppliers"
	collProducts     = "products"
	collOrders       = "orders"
	collStatusChecks = "status_checks"
	collEncodingJobs = "encoding_jobs"
)

// NewConnection connects to MongoDB and verifies the connection. The
// returned client is connection-pooled and safe for concurrent use.
func NewConnection(cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// Disconnect tears down the client with a bounded timeout
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
