package mockapi

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

func (s *Server) listInvoices(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, collect(s.invoices, currentUserID(c), nil))
}

func (s *Server) createInvoice(c *gin.Context) {
	var req domain.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors(c, "Invalid request body")
		return
	}
	if req.ClientName == "" || req.ClientEmail == "" {
		validationErrors(c, "client_name: field required", "client_email: field required")
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal float64
	items := make([]domain.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		amount := round2(it.Quantity * it.Rate)
		subtotal += amount
		items = append(items, domain.InvoiceItem{
			ID:          s.allocID(),
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      amount,
		})
	}
	subtotal = round2(subtotal)
	taxAmount := round2(subtotal * req.TaxRate / 100)

	inv := domain.Invoice{
		ID:                 s.allocID(),
		Title:              req.Title,
		Description:        req.Description,
		ClientID:           req.ClientID,
		ClientName:         req.ClientName,
		ClientEmail:        req.ClientEmail,
		ClientAddress:      req.ClientAddress,
		ProjectID:          req.ProjectID,
		Subtotal:           subtotal,
		TaxRate:            req.TaxRate,
		TaxAmount:          taxAmount,
		TotalAmount:        round2(subtotal + taxAmount),
		Currency:           currency,
		Status:             domain.InvoiceDraft,
		DueDate:            req.DueDate,
		Notes:              req.Notes,
		Terms:              req.Terms,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
		CreatedAt:          time.Now().UTC(),
		Items:              items,
	}
	inv.InvoiceNumber = fmt.Sprintf("INV-%04d", inv.ID)
	s.invoices[inv.ID] = &owned[domain.Invoice]{owner: currentUserID(c), rec: inv}
	c.JSON(http.StatusOK, inv)
}

func (s *Server) getInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.invoices, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) updateInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors(c, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.invoices, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Invoice not found")
		return
	}
	if req.Title != nil {
		rec.rec.Title = req.Title
	}
	if req.Description != nil {
		rec.rec.Description = req.Description
	}
	if req.ClientName != nil {
		rec.rec.ClientName = *req.ClientName
	}
	if req.ClientEmail != nil {
		rec.rec.ClientEmail = *req.ClientEmail
	}
	if req.ClientAddress != nil {
		rec.rec.ClientAddress = req.ClientAddress
	}
	if req.TaxRate != nil {
		rec.rec.TaxRate = *req.TaxRate
		rec.rec.TaxAmount = round2(rec.rec.Subtotal * rec.rec.TaxRate / 100)
		rec.rec.TotalAmount = round2(rec.rec.Subtotal + rec.rec.TaxAmount)
	}
	if req.Currency != nil {
		rec.rec.Currency = *req.Currency
	}
	if req.DueDate != nil {
		rec.rec.DueDate = req.DueDate
	}
	if req.Notes != nil {
		rec.rec.Notes = req.Notes
	}
	if req.Terms != nil {
		rec.rec.Terms = req.Terms
	}
	touch(&rec.rec.UpdatedAt)
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) deleteInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := fetch(s.invoices, currentUserID(c), id); !ok {
		detail(c, http.StatusNotFound, "Invoice not found")
		return
	}
	delete(s.invoices, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) updateInvoiceStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	newStatus := c.Query("new_status")
	switch newStatus {
	case domain.InvoiceDraft, domain.InvoiceSent, domain.InvoicePaid, domain.InvoiceOverdue, domain.InvoiceCancelled:
	default:
		detail(c, http.StatusBadRequest, "Invalid invoice status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := currentUserID(c)
	rec, ok := fetch(s.invoices, owner, id)
	if !ok {
		detail(c, http.StatusNotFound, "Invoice not found")
		return
	}
	rec.rec.Status = newStatus
	now := time.Now().UTC()
	switch newStatus {
	case domain.InvoiceSent:
		rec.rec.SentDate = &now
	case domain.InvoicePaid:
		rec.rec.PaidDate = &now
		s.pushNotification(owner, "Payment received",
			fmt.Sprintf("Invoice %s was marked paid.", rec.rec.InvoiceNumber),
			domain.NotifyPaymentReceived, domain.PriorityMedium)
	}
	touch(&rec.rec.UpdatedAt)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Invoice status updated to %s", newStatus)})
}

func (s *Server) sendInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	// Overrides are accepted but the mock has no mailer to hand them to.
	var req domain.SendInvoiceRequest
	_ = c.ShouldBindJSON(&req)

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.invoices, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Invoice not found")
		return
	}
	if rec.rec.Status == domain.InvoiceCancelled {
		detail(c, http.StatusBadRequest, "Cannot send a cancelled invoice")
		return
	}
	now := time.Now().UTC()
	rec.rec.Status = domain.InvoiceSent
	rec.rec.SentDate = &now
	touch(&rec.rec.UpdatedAt)
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) invoicePDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.invoices, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Invoice not found")
		return
	}
	filename := fmt.Sprintf("%s.pdf", rec.rec.InvoiceNumber)
	c.JSON(http.StatusOK, domain.InvoicePDF{
		URL:      fmt.Sprintf("/generated/%s", filename),
		Filename: filename,
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
