package domain

import "time"

// InvoiceItem represents a single line on an invoice.
type InvoiceItem struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Invoice represents an invoice record with its items.
type Invoice struct {
	ID                 int64         `json:"id"`
	InvoiceNumber      string        `json:"invoice_number"`
	Title              *string       `json:"title,omitempty"`
	Description        *string       `json:"description,omitempty"`
	ClientID           *int64        `json:"client_id,omitempty"`
	ClientName         string        `json:"client_name"`
	ClientEmail        string        `json:"client_email"`
	ClientAddress      *string       `json:"client_address,omitempty"`
	ProjectID          *int64        `json:"project_id,omitempty"`
	ProjectTitle       *string       `json:"project_title,omitempty"`
	Subtotal           float64       `json:"subtotal"`
	TaxRate            float64       `json:"tax_rate"`
	TaxAmount          float64       `json:"tax_amount"`
	TotalAmount        float64       `json:"total_amount"`
	Currency           string        `json:"currency"`
	Status             string        `json:"status"` // draft, sent, paid, overdue, cancelled
	DueDate            *time.Time    `json:"due_date,omitempty"`
	SentDate           *time.Time    `json:"sent_date,omitempty"`
	PaidDate           *time.Time    `json:"paid_date,omitempty"`
	Notes              *string       `json:"notes,omitempty"`
	Terms              *string       `json:"terms,omitempty"`
	IsRecurring        bool          `json:"is_recurring"`
	RecurringFrequency *string       `json:"recurring_frequency,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          *time.Time    `json:"updated_at,omitempty"`
	Items              []InvoiceItem `json:"items,omitempty"`
}

// Invoice status constants
const (
	InvoiceDraft     = "draft"
	InvoiceSent      = "sent"
	InvoicePaid      = "paid"
	InvoiceOverdue   = "overdue"
	InvoiceCancelled = "cancelled"
)

// CreateInvoiceItemRequest is a line item on a new invoice. The backend
// computes the amount from quantity and rate.
type CreateInvoiceItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// CreateInvoiceRequest represents data needed to create an invoice.
// The invoice number and lifecycle dates are assigned by the backend.
type CreateInvoiceRequest struct {
	Title              *string                    `json:"title,omitempty"`
	Description        *string                    `json:"description,omitempty"`
	ClientID           *int64                     `json:"client_id,omitempty"`
	ClientName         string                     `json:"client_name"`
	ClientEmail        string                     `json:"client_email"`
	ClientAddress      *string                    `json:"client_address,omitempty"`
	ProjectID          *int64                     `json:"project_id,omitempty"`
	TaxRate            float64                    `json:"tax_rate"`
	Currency           string                     `json:"currency"`
	DueDate            *time.Time                 `json:"due_date,omitempty"`
	Notes              *string                    `json:"notes,omitempty"`
	Terms              *string                    `json:"terms,omitempty"`
	IsRecurring        bool                       `json:"is_recurring"`
	RecurringFrequency *string                    `json:"recurring_frequency,omitempty"`
	Items              []CreateInvoiceItemRequest `json:"items"`
}

// UpdateInvoiceRequest represents a partial invoice edit.
type UpdateInvoiceRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	ClientName    *string    `json:"client_name,omitempty"`
	ClientEmail   *string    `json:"client_email,omitempty"`
	ClientAddress *string    `json:"client_address,omitempty"`
	TaxRate       *float64   `json:"tax_rate,omitempty"`
	Currency      *string    `json:"currency,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Terms         *string    `json:"terms,omitempty"`
}

// SendInvoiceRequest carries optional overrides for the invoice send endpoint.
type SendInvoiceRequest struct {
	RecipientEmail *string `json:"recipient_email,omitempty"`
	CustomMessage  *string `json:"custom_message,omitempty"`
}

// InvoicePDF is returned by the invoice PDF endpoint.
type InvoicePDF struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
