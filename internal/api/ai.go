package api

import (
	"context"
	"net/http"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// GenerateContent runs one of the AI tools (proposal, contract, invoice,
// task breakdown). Generation can take minutes, so this uses the long
// timeout class.
func (c *Client) GenerateContent(ctx context.Context, req domain.AIRequest) (*domain.AIResponse, error) {
	var out domain.AIResponse
	if err := c.do(ctx, c.generateClient, http.MethodPost, "/ai/generate", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UsageStats returns the AI usage counters for the current user.
func (c *Client) UsageStats(ctx context.Context) (*domain.UsageStats, error) {
	var out domain.UsageStats
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/ai/usage", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
