package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/config"
	"github.com/tampabaymerch/backoffice/internal/domain"
	mongorepo "github.com/tampabaymerch/backoffice/internal/repository/mongo"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/create-supplier/main.go <supplier-name> <category>")
		fmt.Println("Example: go run cmd/create-supplier/main.go \"S&S Activewear\" ss_activewear")
		os.Exit(1)
	}

	supplierName := os.Args[1]
	category := domain.SupplierCategory(os.Args[2])
	if !category.IsValid() {
		fmt.Fprintf(os.Stderr, "Unknown supplier category: %s\n", os.Args[2])
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to the document store
	client, err := mongorepo.NewConnection(cfg.Mongo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to document store: %v\n", err)
		os.Exit(1)
	}
	defer mongorepo.Disconnect(client)

	// Create repositories
	repos := mongorepo.NewRepositories(client.Database(cfg.Mongo.DBName), logger)

	supplier := &domain.Supplier{
		Name:     supplierName,
		Category: category,
		Settings: map[string]interface{}{},
		IsActive: true,
	}

	if err := repos.Supplier.Create(context.Background(), supplier); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create supplier: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Supplier created successfully!\n\n")
	fmt.Printf("Supplier ID: %s\n", supplier.ID)
	fmt.Printf("Supplier Name: %s\n", supplier.Name)
	fmt.Printf("Category: %s\n", supplier.Category)
}
