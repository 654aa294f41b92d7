package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// ListInvoices returns all invoices.
func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var out []domain.Invoice
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/invoices", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInvoice fetches a single invoice with its items.
func (c *Client) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	var out domain.Invoice
	if err := c.do(ctx, c.defaultClient, http.MethodGet, fmt.Sprintf("/invoices/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvoice creates an invoice; the invoice number and totals come back
// backend-assigned on the canonical record.
func (c *Client) CreateInvoice(ctx context.Context, req domain.CreateInvoiceRequest) (*domain.Invoice, error) {
	var out domain.Invoice
	if err := c.do(ctx, c.defaultClient, http.MethodPost, "/invoices", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInvoice applies a partial edit and returns the record as persisted.
func (c *Client) UpdateInvoice(ctx context.Context, id int64, req domain.UpdateInvoiceRequest) (*domain.Invoice, error) {
	var out domain.Invoice
	if err := c.do(ctx, c.defaultClient, http.MethodPut, fmt.Sprintf("/invoices/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvoice removes an invoice.
func (c *Client) DeleteInvoice(ctx context.Context, id int64) error {
	return c.do(ctx, c.defaultClient, http.MethodDelete, fmt.Sprintf("/invoices/%d", id), nil, nil, nil)
}

// UpdateInvoiceStatus moves an invoice through its lifecycle (draft, sent,
// paid, overdue, cancelled). The backend takes the new status as a query
// parameter and acknowledges with a message only; callers wanting the
// updated record refetch it.
func (c *Client) UpdateInvoiceStatus(ctx context.Context, id int64, status string) (*domain.MessageResponse, error) {
	query := url.Values{}
	query.Set("new_status", status)
	var out domain.MessageResponse
	if err := c.do(ctx, c.defaultClient, http.MethodPatch, fmt.Sprintf("/invoices/%d/status", id), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendInvoice emails the invoice to its recipient, with optional overrides.
func (c *Client) SendInvoice(ctx context.Context, id int64, req domain.SendInvoiceRequest) error {
	return c.do(ctx, c.defaultClient, http.MethodPost, fmt.Sprintf("/invoices/%d/send", id), nil, req, nil)
}

// GenerateInvoicePDF asks the backend to render the invoice as a PDF and
// returns where to fetch it.
func (c *Client) GenerateInvoicePDF(ctx context.Context, id int64) (*domain.InvoicePDF, error) {
	var out domain.InvoicePDF
	if err := c.do(ctx, c.defaultClient, http.MethodGet, fmt.Sprintf("/invoices/%d/pdf", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
