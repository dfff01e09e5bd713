package shopify

// RemoteProduct is a product as returned by the Admin REST API
type RemoteProduct struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	BodyHTML    string          `json:"body_html"`
	Vendor      string          `json:"vendor"`
	ProductType string          `json:"product_type"`
	Status      string          `json:"status"`
	Tags        string          `json:"tags"`
	Variants    []RemoteVariant `json:"variants"`
	Images      []RemoteImage   `json:"images"`
}

type RemoteVariant struct {
	ID                  int64  `json:"id,omitempty"`
	SKU                 string `json:"sku"`
	Price               string `json:"price"`
	InventoryQuantity   int    `json:"inventory_quantity,omitempty"`
	InventoryManagement string `json:"inventory_management,omitempty"`
	InventoryPolicy     string `json:"inventory_policy,omitempty"`
}

type RemoteImage struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// RemoteProductPayload is the create/update body for a product
type RemoteProductPayload struct {
	ID          int64             `json:"id,omitempty"`
	Title       string            `json:"title"`
	BodyHTML    string            `json:"body_html"`
	Vendor      string            `json:"vendor,omitempty"`
	ProductType string            `json:"product_type,omitempty"`
	Status      string            `json:"status,omitempty"`
	Tags        string            `json:"tags,omitempty"`
	Variants    []RemoteVariant   `json:"variants,omitempty"`
	Images      []RemoteImage     `json:"images,omitempty"`
	Metafields  []RemoteMetafield `json:"metafields,omitempty"`
}

type RemoteMetafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      string `json:"type"`
}

// RemoteOrder is an order as returned by the Admin REST API
type RemoteOrder struct {
	ID                int64                  `json:"id"`
	Name              string                 `json:"name"`
	Email             string                 `json:"email"`
	Phone             string                 `json:"phone,omitempty"`
	TotalPrice        string                 `json:"total_price"`
	FinancialStatus   string                 `json:"financial_status"`
	FulfillmentStatus string                 `json:"fulfillment_status"`
	Customer          RemoteCustomer         `json:"customer"`
	ShippingAddress   map[string]interface{} `json:"shipping_address"`
	LineItems         []RemoteLineItem       `json:"line_items"`
}

type RemoteCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type RemoteLineItem struct {
	Title    string `json:"title"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// RemoteOrderPayload is the create body for an order. The storefront fills
// in pricing from the variant unless an explicit price is given.
type RemoteOrderPayload struct {
	Email             string                 `json:"email,omitempty"`
	LineItems         []RemoteOrderLineItem  `json:"line_items"`
	BillingAddress    map[string]interface{} `json:"billing_address,omitempty"`
	ShippingAddress   map[string]interface{} `json:"shipping_address,omitempty"`
	FinancialStatus   string                 `json:"financial_status,omitempty"`
	FulfillmentStatus *string                `json:"fulfillment_status"`
}

type RemoteOrderLineItem struct {
	VariantID int64  `json:"variant_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price,omitempty"`
}

// RemoteLocation is a fulfillment location
type RemoteLocation struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RemoteFulfillment is a fulfillment record on an order
type RemoteFulfillment struct {
	ID             int64  `json:"id"`
	OrderID        int64  `json:"order_id"`
	Status         string `json:"status"`
	TrackingNumber string `json:"tracking_number"`
}

// RemoteWebhook is a webhook registration
type RemoteWebhook struct {
	ID      int64  `json:"id"`
	Topic   string `json:"topic"`
	Address string `json:"address"`
	Format  string `json:"format"`
}
