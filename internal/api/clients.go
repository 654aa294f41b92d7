package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// ListClients returns all customer records.
func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var out []domain.Client
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/clients", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetClient fetches a single customer record.
func (c *Client) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	var out domain.Client
	if err := c.do(ctx, c.defaultClient, http.MethodGet, fmt.Sprintf("/clients/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClient creates a customer record and returns the canonical record.
func (c *Client) CreateClient(ctx context.Context, req domain.CreateClientRequest) (*domain.Client, error) {
	var out domain.Client
	if err := c.do(ctx, c.defaultClient, http.MethodPost, "/clients", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient applies a partial edit and returns the record as persisted.
func (c *Client) UpdateClient(ctx context.Context, id int64, req domain.UpdateClientRequest) (*domain.Client, error) {
	var out domain.Client
	if err := c.do(ctx, c.defaultClient, http.MethodPut, fmt.Sprintf("/clients/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClient removes a customer record.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.do(ctx, c.defaultClient, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil, nil, nil)
}

// ToggleClientStatus flips a customer between active and inactive.
func (c *Client) ToggleClientStatus(ctx context.Context, id int64) (*domain.ToggleStatusResponse, error) {
	var out domain.ToggleStatusResponse
	if err := c.do(ctx, c.defaultClient, http.MethodPatch, fmt.Sprintf("/clients/%d/toggle-status", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
