package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/config"
	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/internal/shopify"
	"github.com/tampabaymerch/backoffice/pkg/errors"
)

// storefrontAPI is the slice of the Shopify client the sync service uses
type storefrontAPI interface {
	GetProducts(ctx context.Context, limit int) ([]shopify.RemoteProduct, error)
	CreateProduct(ctx context.Context, product shopify.RemoteProductPayload) (*shopify.RemoteProduct, error)
	UpdateProduct(ctx context.Context, productID int64, product shopify.RemoteProductPayload) (*shopify.RemoteProduct, error)
	GetOrders(ctx context.Context, status string, limit int) ([]shopify.RemoteOrder, error)
	CreateOrder(ctx context.Context, order shopify.RemoteOrderPayload) (*shopify.RemoteOrder, error)
	GetLocations(ctx context.Context) ([]shopify.RemoteLocation, error)
	CreateFulfillment(ctx context.Context, orderID, locationID int64, trackingNumber string) (*shopify.RemoteFulfillment, error)
	GetWebhooks(ctx context.Context) ([]shopify.RemoteWebhook, error)
	CreateWebhook(ctx context.Context, topic, address string) (*shopify.RemoteWebhook, error)
}

type shopifyService struct {
	client  storefrontAPI
	repos   *repository.Repositories
	baseURL string
	logger  *zap.Logger
}

// NewShopifyService creates a new Shopify sync service
func NewShopifyService(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) *shopifyService {
	return &shopifyService{
		client:  shopify.NewClient(cfg.Shopify, logger),
		repos:   repos,
		baseURL: cfg.API.BaseURL,
		logger:  logger,
	}
}

// SyncReport summarizes a product sync run
type SyncReport struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors,omitempty"`
}

// SyncProducts pushes the local catalog to the storefront. Remote products
// are matched by first-variant SKU against the first remote page; a failure
// on one product is recorded and the sweep continues. Single pass, no
// retries, no reconciliation of remote deletions.
func (s *shopifyService) SyncProducts(ctx context.Context) (*SyncReport, error) {
	products, err := s.repos.Product.List(ctx)
	if err != nil {
		return nil, err
	}

	remote, err := s.client.GetProducts(ctx, 250)
	if err != nil {
		return nil, err
	}

	remoteBySKU := make(map[string]shopify.RemoteProduct)
	for _, rp := range remote {
		if len(rp.Variants) > 0 && rp.Variants[0].SKU != "" {
			remoteBySKU[rp.Variants[0].SKU] = rp
		}
	}

	report := &SyncReport{}
	for _, product := range products {
		payload := buildRemotePayload(product)

		if existing, ok := remoteBySKU[product.SKU]; ok {
			if _, err := s.client.UpdateProduct(ctx, existing.ID, payload); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("error syncing %s: %v", product.Name, err))
				continue
			}
			report.Updated++
		} else {
			if _, err := s.client.CreateProduct(ctx, payload); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("error syncing %s: %v", product.Name, err))
				continue
			}
			report.Created++
		}
	}
	return report, nil
}

// PullOrders fetches remote orders (first page only)
func (s *shopifyService) PullOrders(ctx context.Context, status string) ([]shopify.RemoteOrder, error) {
	return s.client.GetOrders(ctx, status, 250)
}

// PushOrder creates a local order on the storefront, an admin flow for
// orders that originated outside the storefront. The remote order id is
// stored back as the supplier_order_id.
func (s *shopifyService) PushOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repos.Order.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	item := shopify.RemoteOrderLineItem{
		Quantity: order.Quantity,
		Price:    fmt.Sprintf("%.2f", order.UnitPrice),
	}
	product, err := s.repos.Product.GetByID(ctx, order.ProductID)
	if err == nil {
		item.Title = product.Name
		if product.SupplierVariantID != nil {
			if variantID, parseErr := strconv.ParseInt(*product.SupplierVariantID, 10, 64); parseErr == nil {
				item.VariantID = variantID
			}
		}
	}

	remote, err := s.client.CreateOrder(ctx, shopify.RemoteOrderPayload{
		Email:           order.CustomerEmail,
		LineItems:       []shopify.RemoteOrderLineItem{item},
		BillingAddress:  order.ShippingAddress,
		ShippingAddress: order.ShippingAddress,
		FinancialStatus: "pending",
	})
	if err != nil {
		return nil, &errors.ErrIntegration{Service: "shopify", Message: err.Error()}
	}

	remoteID := strconv.FormatInt(remote.ID, 10)
	order.SupplierOrderID = &remoteID
	if err := s.repos.Order.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// PushFulfillment records a fulfillment with tracking on the order's remote
// counterpart, notifying the customer. The order must carry a remote order
// id in supplier_order_id and a tracking number.
func (s *shopifyService) PushFulfillment(ctx context.Context, order *domain.Order) error {
	if order.SupplierOrderID == nil || order.TrackingNumber == nil {
		return &errors.ErrValidation{Field: "order", Message: "fulfillment requires a remote order id and a tracking number"}
	}
	remoteOrderID, err := strconv.ParseInt(*order.SupplierOrderID, 10, 64)
	if err != nil {
		return &errors.ErrValidation{Field: "supplier_order_id", Message: fmt.Sprintf("%q is not a remote order id", *order.SupplierOrderID)}
	}

	locations, err := s.client.GetLocations(ctx)
	if err != nil {
		return &errors.ErrIntegration{Service: "shopify", Message: err.Error()}
	}
	if len(locations) == 0 {
		return &errors.ErrIntegration{Service: "shopify", Message: "store has no fulfillment locations"}
	}

	if _, err := s.client.CreateFulfillment(ctx, remoteOrderID, locations[0].ID, *order.TrackingNumber); err != nil {
		return &errors.ErrIntegration{Service: "shopify", Message: err.Error()}
	}
	return nil
}

// SetupWebhooks registers the webhooks the back-office consumes, skipping
// addresses that are already registered. Returns the topics created.
func (s *shopifyService) SetupWebhooks(ctx context.Context) ([]string, error) {
	topics := []string{
		"orders/create",
		"orders/updated",
		"orders/paid",
		"orders/fulfilled",
		"products/create",
		"products/update",
	}

	existing, err := s.client.GetWebhooks(ctx)
	if err != nil {
		return nil, err
	}
	existingAddresses := make(map[string]bool, len(existing))
	for _, w := range existing {
		existingAddresses[w.Address] = true
	}

	created := []string{}
	for _, topic := range topics {
		address := fmt.Sprintf("%s/api/webhooks/shopify/%s", s.baseURL, topic)
		if existingAddresses[address] {
			continue
		}
		if _, err := s.client.CreateWebhook(ctx, topic, address); err != nil {
			s.logger.Error("Failed to create webhook", zap.String("topic", topic), zap.Error(err))
			continue
		}
		created = append(created, topic)
	}
	return created, nil
}

// IngestWebhookOrder maps an inbound order webhook payload into the
// canonical order shape and persists it: first/last name concatenation,
// address passthrough, price passthrough. This is a thin one-way adapter;
// no idempotency, retry or ordering is handled, so a redelivered webhook
// creates a second order.
func (s *shopifyService) IngestWebhookOrder(ctx context.Context, payload shopify.RemoteOrder, paid bool) (*domain.Order, error) {
	customerName := strings.TrimSpace(payload.Customer.FirstName + " " + payload.Customer.LastName)
	if customerName == "" {
		customerName = payload.Email
	}

	email := payload.Email
	if email == "" {
		email = payload.Customer.Email
	}

	quantity := 1
	unitPrice := 0.0
	if len(payload.LineItems) > 0 {
		li := payload.LineItems[0]
		if li.Quantity > 0 {
			quantity = li.Quantity
		}
		if f, err := strconv.ParseFloat(li.Price, 64); err == nil {
			unitPrice = f
		}
	}

	total := unitPrice * float64(quantity)
	if f, err := strconv.ParseFloat(payload.TotalPrice, 64); err == nil && f > 0 {
		total = f
	}

	status := domain.OrderStatusPending
	if paid {
		status = domain.OrderStatusProcessing
	}

	remoteID := strconv.FormatInt(payload.ID, 10)
	order := &domain.Order{
		OrderNumber:     newOrderNumber(),
		CustomerName:    customerName,
		CustomerEmail:   email,
		ShippingAddress: payload.ShippingAddress,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		TotalAmount:     total,
		Status:          status,
		SupplierOrderID: &remoteID,
	}
	if payload.Customer.Phone != "" {
		order.CustomerPhone = &payload.Customer.Phone
	}
	if order.ShippingAddress == nil {
		order.ShippingAddress = map[string]interface{}{}
	}

	if err := s.repos.Order.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func buildRemotePayload(product *domain.Product) shopify.RemoteProductPayload {
	status := "draft"
	if product.Status == domain.ProductStatusActive {
		status = "active"
	}

	productType := "Sports Merchandise"
	if product.Category != nil && *product.Category != "" {
		productType = *product.Category
	}

	payload := shopify.RemoteProductPayload{
		Title:       product.Name,
		BodyHTML:    product.Description,
		Vendor:      "TampaBay Merch",
		ProductType: productType,
		Status:      status,
		Tags:        strings.Join(product.Tags, ","),
		Variants: []shopify.RemoteVariant{{
			SKU:                 product.SKU,
			Price:               fmt.Sprintf("%.2f", product.Price),
			InventoryQuantity:   product.StockQuantity,
			InventoryManagement: "shopify",
			InventoryPolicy:     "deny",
		}},
		Metafields: []shopify.RemoteMetafield{
			{
				Namespace: "tampabay_merch",
				Key:       "supplier_id",
				Value:     product.SupplierID,
				Type:      "single_line_text_field",
			},
			{
				Namespace: "tampabay_merch",
				Key:       "product_type",
				Value:     string(product.ProductType),
				Type:      "single_line_text_field",
			},
		},
	}

	if product.ImageURL != nil && *product.ImageURL != "" {
		payload.Images = []shopify.RemoteImage{{Src: *product.ImageURL, Alt: product.Name}}
	}
	return payload
}
