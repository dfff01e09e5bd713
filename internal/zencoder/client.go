package zencoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/config"
)

type Client struct {
	clientID   string
	secretKey  string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new encoding service client
func NewClient(cfg config.ZencoderConfig, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.zencoder.com/v2"
	}

	return &Client{
		clientID:  cfg.ClientID,
		secretKey: cfg.SecretKey,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// JobRequest is an encoding job submission
type JobRequest struct {
	Input         string                   `json:"input"`
	Outputs       []map[string]interface{} `json:"outputs"`
	Notifications []Notification           `json:"notifications,omitempty"`
}

type Notification struct {
	URL    string `json:"url"`
	Format string `json:"format"`
}

// JobResponse is the encoding service's job record
type JobResponse struct {
	ID      json.Number              `json:"id"`
	State   string                   `json:"state"`
	Outputs []map[string]interface{} `json:"outputs,omitempty"`
}

// Authenticate exchanges the client credentials for a bearer token
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	body := map[string]string{
		"client_id":     c.clientID,
		"client_secret": c.secretKey,
		"grant_type":    "client_credentials",
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/oauth/token", "", body, &resp); err != nil {
		return "", fmt.Errorf("authentication failed: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("authentication failed: empty token")
	}
	return resp.AccessToken, nil
}

// CreateJob submits an encoding job
func (c *Client) CreateJob(ctx context.Context, job JobRequest) (*JobResponse, error) {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var resp JobResponse
	if err := c.do(ctx, http.MethodPost, "/jobs", token, job, &resp); err != nil {
		return nil, fmt.Errorf("encoding job creation failed: %w", err)
	}
	return &resp, nil
}

// GetJob fetches the live status of an encoding job
func (c *Client) GetJob(ctx context.Context, jobID string) (*JobResponse, error) {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var resp JobResponse
	endpoint := fmt.Sprintf("/jobs/%s", jobID)
	if err := c.do(ctx, http.MethodGet, endpoint, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("job status check failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, payload, out interface{}) error {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

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
		return fmt.Errorf("encoding service error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return nil
}
