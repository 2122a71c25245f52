// Package gemini adapts the google.golang.org/genai SDK to the single
// generate-content call the merge orchestrator consumes.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	HTTPClient *http.Client
}

// Client is a thin wrapper over the SDK's Models service.
type Client struct {
	models *genai.Models
}

// NewClient constructs a Gemini API client. The API key is mandatory here;
// callers that may legitimately run without one decide that before
// constructing the client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.HTTPClient != nil {
		cc.HTTPClient = opts.HTTPClient
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{models: client.Models}, nil
}

// GenerateContent issues one generation call against the given model.
func (c *Client) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.models.GenerateContent(ctx, model, contents, config)
}
