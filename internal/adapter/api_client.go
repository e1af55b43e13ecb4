package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"neurotrader/internal/domain"
)

// APIClient talks to the Mock Data API and implements domain.MarketDataClient
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// RootInfo is the banner returned by GET /
type RootInfo struct {
	Message string `json:"message" yaml:"message"`
	Status  string `json:"status" yaml:"status"`
}

// NewAPIClient creates a new Mock Data API client
func NewAPIClient(baseURL string) *APIClient {
	return NewAPIClientWithHTTPClient(baseURL, &http.Client{
		Timeout: 10 * time.Second,
	})
}

// NewAPIClientWithHTTPClient creates a client using the given http.Client
func NewAPIClientWithHTTPClient(baseURL string, httpClient *http.Client) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the API base URL the client talks to
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// Root fetches the service banner; it doubles as a health check
func (c *APIClient) Root(ctx context.Context) (*RootInfo, error) {
	var info RootInfo
	if err := c.do(ctx, http.MethodGet, "/", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetStatus fetches the current status snapshot
func (c *APIClient) GetStatus(ctx context.Context) (*domain.StatusSnapshot, error) {
	var status domain.StatusSnapshot
	if err := c.do(ctx, http.MethodGet, "/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetMarketContext fetches the market context entries
func (c *APIClient) GetMarketContext(ctx context.Context) ([]domain.MarketContextEntry, error) {
	var entries []domain.MarketContextEntry
	if err := c.do(ctx, http.MethodGet, "/market_context", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ExecuteTrade asks the API to execute a trade
func (c *APIClient) ExecuteTrade(ctx context.Context) (*domain.TradeExecution, error) {
	var ack domain.TradeExecution
	if err := c.do(ctx, http.MethodPost, "/execute_trade", &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, out interface{}) error {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("API returned error for %s %s: status=%d, body=%s", method, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return fmt.Errorf("received non-JSON response from %s: %s", path, ct)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
