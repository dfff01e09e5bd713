package domain

import (
	"time"
)

// Supplier represents an external vendor whose catalog and orders are
// mirrored locally
type Supplier struct {
	ID          string                 `json:"id" bson:"id"`
	Name        string                 `json:"name" bson:"name"`
	Category    SupplierCategory       `json:"category" bson:"category"`
	APIEndpoint *string                `json:"api_endpoint,omitempty" bson:"api_endpoint,omitempty"`
	APIKey      *string                `json:"api_key,omitempty" bson:"api_key,omitempty"`
	WebhookURL  *string                `json:"webhook_url,omitempty" bson:"webhook_url,omitempty"`
	Settings    map[string]interface{} `json:"settings" bson:"settings"`
	IsActive    bool                   `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time              `json:"created_at" bson:"created_at"`
}

// Dimensions holds the physical dimensions of a product
type Dimensions struct {
	Length float64 `json:"length" bson:"length"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Unit   string  `json:"unit" bson:"unit"`
}

// Product represents a catalog product owned by a supplier
type Product struct {
	ID                string        `json:"id" bson:"id"`
	Name              string        `json:"name" bson:"name"`
	Description       string        `json:"description" bson:"description"`
	Price             float64       `json:"price" bson:"price"`
	Cost              float64       `json:"cost" bson:"cost"`
	SKU               string        `json:"sku" bson:"sku"`
	SupplierID        string        `json:"supplier_id" bson:"supplier_id"`
	SupplierProductID *string       `json:"supplier_product_id,omitempty" bson:"supplier_product_id,omitempty"`
	SupplierVariantID *string       `json:"supplier_variant_id,omitempty" bson:"supplier_variant_id,omitempty"`
	ImageURL          *string       `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Category          *string       `json:"category,omitempty" bson:"category,omitempty"`
	Tags              []string      `json:"tags,omitempty" bson:"tags,omitempty"`
	ProductType       ProductType   `json:"product_type" bson:"product_type"`
	Status            ProductStatus `json:"status" bson:"status"`
	StockQuantity     int           `json:"stock_quantity" bson:"stock_quantity"`
	Weight            *float64      `json:"weight,omitempty" bson:"weight,omitempty"`
	Dimensions        *Dimensions   `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	AffiliateURL      *string       `json:"affiliate_url,omitempty" bson:"affiliate_url,omitempty"`
	CommissionRate    *float64      `json:"commission_rate,omitempty" bson:"commission_rate,omitempty"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" bson:"updated_at"`
}

// Order represents a customer order. Unit price, total amount and the
// supplier linkage are snapshotted at creation time and never recomputed
// from the live product.
type Order struct {
	ID              string                 `json:"id" bson:"id"`
	OrderNumber     string                 `json:"order_number" bson:"order_number"`
	CustomerName    string                 `json:"customer_name" bson:"customer_name"`
	CustomerEmail   string                 `json:"customer_email" bson:"customer_email"`
	CustomerPhone   *string                `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	ShippingAddress map[string]interface{} `json:"shipping_address" bson:"shipping_address"`
	ProductID       string                 `json:"product_id" bson:"product_id"`
	SupplierID      string                 `json:"supplier_id" bson:"supplier_id"`
	Quantity        int                    `json:"quantity" bson:"quantity"`
	UnitPrice       float64                `json:"unit_price" bson:"unit_price"`
	TotalAmount     float64                `json:"total_amount" bson:"total_amount"`
	Status          OrderStatus            `json:"status" bson:"status"`
	SupplierOrderID *string                `json:"supplier_order_id,omitempty" bson:"supplier_order_id,omitempty"`
	TrackingNumber  *string                `json:"tracking_number,omitempty" bson:"tracking_number,omitempty"`
	Notes           *string                `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at" bson:"updated_at"`
}

// StatusCheck is a client liveness ping record
type StatusCheck struct {
	ID         string    `json:"id" bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// EncodingJob tracks a media-encoding job submitted to the encoding service.
// The completion webhook payload is stored verbatim for later inspection.
type EncodingJob struct {
	ID        string                 `json:"id" bson:"id"`
	JobID     string                 `json:"job_id" bson:"job_id"`
	Label     string                 `json:"label" bson:"label"`
	InputURL  string                 `json:"input_url" bson:"input_url"`
	ProductID *string                `json:"product_id,omitempty" bson:"product_id,omitempty"`
	Status    string                 `json:"status" bson:"status"`
	Payload   map[string]interface{} `json:"payload,omitempty" bson:"payload,omitempty"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time              `json:"updated_at" bson:"updated_at"`
}
