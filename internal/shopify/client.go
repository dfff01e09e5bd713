package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/config"
)

type Client struct {
	shopDomain  string
	accessToken string
	apiVersion  string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewClient creates a new Shopify Admin REST client
func NewClient(cfg config.ShopifyConfig, logger *zap.Logger) *Client {
	// Normalize shop domain - remove https://, http://, and trailing slashes
	shopDomain := cfg.ShopDomain
	shopDomain = strings.TrimPrefix(shopDomain, "https://")
	shopDomain = strings.TrimPrefix(shopDomain, "http://")
	shopDomain = strings.TrimSuffix(shopDomain, "/")

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "2024-01"
	}

	return &Client{
		shopDomain:  shopDomain,
		accessToken: cfg.AccessToken,
		apiVersion:  apiVersion,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// do executes an authenticated request against the Admin REST API and
// decodes the JSON response into out when out is non-nil
func (c *Client) do(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	url := fmt.Sprintf("https://%s/admin/api/%s/%s", c.shopDomain, c.apiVersion, endpoint)

	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("shopify API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return nil
}

// GetProducts fetches products from Shopify. Only the first page is
// fetched: following the Link header for subsequent pages is stubbed out.
func (c *Client) GetProducts(ctx context.Context, limit int) ([]RemoteProduct, error) {
	if limit <= 0 || limit > 250 {
		limit = 250
	}

	var resp struct {
		Products []RemoteProduct `json:"products"`
	}
	endpoint := fmt.Sprintf("products.json?limit=%d", limit)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// CreateProduct creates a product in Shopify
func (c *Client) CreateProduct(ctx context.Context, product RemoteProductPayload) (*RemoteProduct, error) {
	var resp struct {
		Product RemoteProduct `json:"product"`
	}
	body := map[string]RemoteProductPayload{"product": product}
	if err := c.do(ctx, http.MethodPost, "products.json", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

// UpdateProduct updates an existing product in Shopify
func (c *Client) UpdateProduct(ctx context.Context, productID int64, product RemoteProductPayload) (*RemoteProduct, error) {
	product.ID = productID

	var resp struct {
		Product RemoteProduct `json:"product"`
	}
	body := map[string]RemoteProductPayload{"product": product}
	endpoint := fmt.Sprintf("products/%d.json", productID)
	if err := c.do(ctx, http.MethodPut, endpoint, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

// GetOrders fetches orders from Shopify (first page only)
func (c *Client) GetOrders(ctx context.Context, status string, limit int) ([]RemoteOrder, error) {
	if status == "" {
		status = "any"
	}
	if limit <= 0 || limit > 250 {
		limit = 250
	}

	var resp struct {
		Orders []RemoteOrder `json:"orders"`
	}
	endpoint := fmt.Sprintf("orders.json?status=%s&limit=%d", status, limit)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// CreateOrder creates an order in Shopify, used for admin and testing flows
func (c *Client) CreateOrder(ctx context.Context, order RemoteOrderPayload) (*RemoteOrder, error) {
	if order.FinancialStatus == "" {
		order.FinancialStatus = "pending"
	}

	var resp struct {
		Order RemoteOrder `json:"order"`
	}
	body := map[string]RemoteOrderPayload{"order": order}
	if err := c.do(ctx, http.MethodPost, "orders.json", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// GetLocations lists the store's fulfillment locations
func (c *Client) GetLocations(ctx context.Context) ([]RemoteLocation, error) {
	var resp struct {
		Locations []RemoteLocation `json:"locations"`
	}
	if err := c.do(ctx, http.MethodGet, "locations.json", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

// CreateFulfillment records a fulfillment on a remote order with the
// customer notified
func (c *Client) CreateFulfillment(ctx context.Context, orderID, locationID int64, trackingNumber string) (*RemoteFulfillment, error) {
	var resp struct {
		Fulfillment RemoteFulfillment `json:"fulfillment"`
	}
	body := map[string]interface{}{
		"fulfillment": map[string]interface{}{
			"location_id":     locationID,
			"tracking_number": trackingNumber,
			"notify_customer": true,
		},
	}
	endpoint := fmt.Sprintf("orders/%d/fulfillments.json", orderID)
	if err := c.do(ctx, http.MethodPost, endpoint, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Fulfillment, nil
}

// GetWebhooks lists registered webhooks
func (c *Client) GetWebhooks(ctx context.Context) ([]RemoteWebhook, error) {
	var resp struct {
		Webhooks []RemoteWebhook `json:"webhooks"`
	}
	if err := c.do(ctx, http.MethodGet, "webhooks.json", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Webhooks, nil
}

// CreateWebhook registers a webhook for real-time updates
func (c *Client) CreateWebhook(ctx context.Context, topic, address string) (*RemoteWebhook, error) {
	var resp struct {
		Webhook RemoteWebhook `json:"webhook"`
	}
	body := map[string]interface{}{
		"webhook": map[string]string{
			"topic":   topic,
			"address": address,
			"format":  "json",
		},
	}
	if err := c.do(ctx, http.MethodPost, "webhooks.json", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Webhook, nil
}
