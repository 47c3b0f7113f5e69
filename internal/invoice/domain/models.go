// Package domain contains the normalized invoice model consumed by forms and
// tables, and the payload shapes exchanged with the backing API.
package domain

import "time"

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusSent      InvoiceStatus = "sent"
	StatusViewed    InvoiceStatus = "viewed"
	StatusPaid      InvoiceStatus = "paid"
	StatusOverdue   InvoiceStatus = "overdue"
	StatusCancelled InvoiceStatus = "cancelled"

	// StatusPending is a legacy alias still emitted by older API versions.
	// Reports fold it together with StatusSent.
	StatusPending InvoiceStatus = "pending"
)

// Invoice is the normalized representation of an invoice. Every field is
// always present with a defined default, so it binds directly to form state.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Status        InvoiceStatus `json:"status"`
	IssueDate     string        `json:"issueDate"`
	DueDate       string        `json:"dueDate"`

	// Customer keeps the embedded object as received; the flattened fields
	// below are what forms bind to.
	Customer        map[string]any `json:"customer"`
	CustomerID      string         `json:"customerId"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerAddress string         `json:"customerAddress"`

	LineItems []LineItem `json:"lineItems"`

	Subtotal    float64 `json:"subtotal"`
	TaxRate     float64 `json:"taxRate"`
	TaxAmount   float64 `json:"taxAmount"`
	TotalAmount float64 `json:"totalAmount"`
	AmountPaid  float64 `json:"amountPaid"`
	Balance     float64 `json:"balance"`

	Currency     string `json:"currency"`
	PaymentTerms string `json:"paymentTerms"`
	Notes        string `json:"notes"`
	Terms        string `json:"terms"`

	// Raw is the untouched source object, kept for fields the adapter does
	// not model.
	Raw map[string]any `json:"raw,omitempty"`
}

// LineItem is one billable row on a normalized invoice.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Tax         float64 `json:"tax"`
	Amount      float64 `json:"amount"`
	ProductID   string  `json:"productId"`
	SKU         string  `json:"sku"`
}

// InvoicePayload is the shape submitted back to the API. Pointer fields
// distinguish "not set" from zero; the API treats the two differently for
// tax figures.
type InvoicePayload struct {
	InvoiceNumber string        `json:"invoiceNumber,omitempty"`
	Customer      any           `json:"customer,omitempty"`
	Status        InvoiceStatus `json:"status"`

	Date     *time.Time `json:"date,omitempty"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	SentDate *time.Time `json:"sentDate,omitempty"`

	Items []PayloadItem `json:"items"`

	Subtotal    float64  `json:"subtotal"`
	TaxRateUsed *float64 `json:"taxRateUsed,omitempty"`
	TaxAmount   *float64 `json:"taxAmount,omitempty"`
	Discount    float64  `json:"discount"`
	Shipping    float64  `json:"shipping"`
	Total       float64  `json:"total"`
	AmountPaid  float64  `json:"amountPaid"`

	Currency     string `json:"currency,omitempty"`
	PaymentTerms string `json:"paymentTerms,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Terms        string `json:"terms,omitempty"`
}

// PayloadItem is one line of an outbound invoice payload.
type PayloadItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TaxRate     float64 `json:"taxRate"`
	Total       float64 `json:"total"`
	ProductID   string  `json:"product,omitempty"`
	SKU         string  `json:"sku,omitempty"`
}
