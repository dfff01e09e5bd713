package service

// SupplierCreateRequest registers a supplier explicitly
type SupplierCreateRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Category    string                 `json:"category" binding:"required"`
	APIEndpoint *string                `json:"api_endpoint,omitempty"`
	APIKey      *string                `json:"api_key,omitempty"`
	WebhookURL  *string                `json:"webhook_url,omitempty"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
}

// ProductCreateRequest creates or fully overwrites a product
type ProductCreateRequest struct {
	Name              string             `json:"name" binding:"required"`
	Description       string             `json:"description"`
	Price             float64            `json:"price" binding:"required,min=0"`
	Cost              float64            `json:"cost" binding:"min=0"`
	SKU               string             `json:"sku" binding:"required"`
	SupplierID        string             `json:"supplier_id" binding:"required"`
	SupplierProductID *string            `json:"supplier_product_id,omitempty"`
	SupplierVariantID *string            `json:"supplier_variant_id,omitempty"`
	ImageURL          *string            `json:"image_url,omitempty"`
	Category          *string            `json:"category,omitempty"`
	Tags              []string           `json:"tags,omitempty"`
	ProductType       string             `json:"product_type"`
	StockQuantity     int                `json:"stock_quantity" binding:"min=0"`
	Weight            *float64           `json:"weight,omitempty"`
	Dimensions        *DimensionsPayload `json:"dimensions,omitempty"`
	AffiliateURL      *string            `json:"affiliate_url,omitempty"`
	CommissionRate    *float64           `json:"commission_rate,omitempty"`
}

type DimensionsPayload struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// OrderCreateRequest creates an order; price and supplier linkage come from
// the referenced product, not the request
type OrderCreateRequest struct {
	CustomerName    string                 `json:"customer_name" binding:"required"`
	CustomerEmail   string                 `json:"customer_email" binding:"required,email"`
	CustomerPhone   *string                `json:"customer_phone,omitempty"`
	ShippingAddress map[string]interface{} `json:"shipping_address"`
	ProductID       string                 `json:"product_id" binding:"required"`
	Quantity        int                    `json:"quantity" binding:"required,min=1"`
	Notes           *string                `json:"notes,omitempty"`
}

// OrderStatusUpdateRequest overwrites an order's status. Any status may be
// set from any status; tracking and supplier order id ride along optionally.
type OrderStatusUpdateRequest struct {
	Status          string  `json:"status" binding:"required"`
	TrackingNumber  *string `json:"tracking_number,omitempty"`
	SupplierOrderID *string `json:"supplier_order_id,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ImportRequest is a bulk ingestion batch of raw supplier rows
type ImportRequest struct {
	Category string `json:"category" binding:"required"`
	Rows     []Row  `json:"rows" binding:"required,min=1"`
}

// RowFailure reports one failed row of an ingestion batch
type RowFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BatchReport is the outcome of an ingestion batch. Failures are itemized
// so callers can tell "imported 3 of 10" apart from which 7 failed and why.
type BatchReport struct {
	Imported int          `json:"imported_count"`
	Failures []RowFailure `json:"failures,omitempty"`
}
