// Package ai generates recipes through the Gemini REST API. When no API
// key is configured the client is disabled and callers get a canned
// response, matching how the rest of the product degrades without AI.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mealgenie/backend/internal/server/config"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"

	recipeModel = "gemini-2.0-pro"
	searchModel = "gemini-2.0-flash"
)

var ErrDisabled = errors.New("ai disabled")

// SearchResult is the structured answer of a recipe search.
type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Recipe      string `json:"recipe"`
	ImageURL    string `json:"imageUrl"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.API) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// GenerateRecipe asks the model for a recipe using the given ingredients.
func (c *Client) GenerateRecipe(ctx context.Context, ingredients []string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	prompt := fmt.Sprintf("Create an Indian recipe with: %s.\nUse friendly tone.", strings.Join(ingredients, ", "))
	return c.generateContent(ctx, recipeModel, prompt)
}

// SearchRecipe asks the model for a structured recipe matching the query.
// When the model ignores the JSON instruction the raw text is wrapped into
// a fallback result instead of failing the request.
func (c *Client) SearchRecipe(ctx context.Context, query string) (*SearchResult, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	prompt := fmt.Sprintf("Provide JSON only:\n{\n\"title\": \"\",\n\"description\": \"\",\n\"recipe\": \"\"\n}\nRecipe for: %s", query)

	text, err := c.generateContent(ctx, searchModel, prompt)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), result); err != nil {
		return &SearchResult{
			Title:       "AI Recipe",
			Description: query,
			Recipe:      text,
		}, nil
	}
	return result, nil
}

// generateContent request/response shapes, reduced to the fields used.

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generateContent(ctx context.Context, model, prompt string) (string, error) {

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("error encoding request: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling generative api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative api returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty generation result")
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFence removes a surrounding markdown code fence, which the
// model adds even when asked for raw JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
