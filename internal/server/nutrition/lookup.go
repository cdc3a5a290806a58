package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mealgenie/backend/internal/server/config"
)

const defaultLookupURL = "https://api.api-ninjas.com/v1/nutrition"

// LookupClient resolves a free-text food description into nutrition facts.
type LookupClient interface {
	Lookup(ctx context.Context, query string) ([]FoodItem, error)
}

// APINinjasClient calls the API Ninjas nutrition endpoint.
type APINinjasClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewAPINinjasClient(cfg config.API) *APINinjasClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultLookupURL
	}
	return &APINinjasClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
	}
}

func (c *APINinjasClient) Lookup(ctx context.Context, query string) ([]FoodItem, error) {

	u := fmt.Sprintf("%s?query=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling nutrition api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition api returned status %d", resp.StatusCode)
	}

	var items []FoodItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("error decoding nutrition response: %w", err)
	}

	return items, nil
}
