// Package seed provides built-in sample data for demos and smoke tests in
// place of a live API.
package seed

import (
	"fmt"
	"time"
)

// SampleInvoices returns invoices in the raw API shape, deliberately mixing
// current and legacy field names so the adapter and reports are exercised
// the way production payloads exercise them. Dates are derived from now so
// the invoices land inside the current trend year.
func SampleInvoices(now time.Time) []map[string]any {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	return []map[string]any{
		{
			"id":            "inv_1001",
			"invoiceNumber": "INV-1001",
			"status":        "paid",
			"issueDate":     day(-40),
			"dueDate":       day(-10),
			"customerId":    "cus_acme",
			"customer": map[string]any{
				"id":    "cus_acme",
				"name":  "Acme Supplies",
				"email": "billing@acme.example",
			},
			"items": []any{
				map[string]any{"description": "Thermal paper rolls", "quantity": 20, "unitPrice": 4.5, "taxRate": 10},
				map[string]any{"description": "Receipt printer", "quantity": 1, "unitPrice": 180.0, "taxRate": 10},
			},
			"subtotal":    270.0,
			"taxAmount":   27.0,
			"totalAmount": 297.0,
			"amountPaid":  297.0,
			"currency":    "USD",
		},
		{
			// Legacy shape: bare customer name, amount instead of
			// totalAmount, tax object, qty/rate item fields.
			"_id":           "inv_1002",
			"invoiceNumber": "INV-1002",
			"status":        "sent",
			"date":          day(-7),
			"dueDate":       day(23),
			"customer":      "Harbor Cafe",
			"lineItems": []any{
				map[string]any{"name": "Espresso beans 1kg", "qty": 6, "rate": 22.0, "tax": 5},
			},
			"tax":    map[string]any{"amount": 6.6},
			"amount": 138.6,
		},
		{
			"id":            "inv_1003",
			"invoiceNumber": "INV-1003",
			"status":        "overdue",
			"issueDate":     day(-75),
			"dueDate":       day(-45),
			"customerId":    "cus_acme",
			"customer": map[string]any{
				"id":   "cus_acme",
				"name": "Acme Supplies",
			},
			"items": []any{
				map[string]any{"description": "Label stock", "quantity": 10, "unitPrice": 12.0},
			},
			"totalAmount": 120.0,
			"currency":    "USD",
		},
		{
			"id":            "inv_1004",
			"invoiceNumber": "INV-1004",
			"status":        "draft",
			"createdAt":     day(-1),
			"customerId":    "cus_harbor",
			"items": []any{
				map[string]any{"description": "Cold brew kegs", "quantity": 2, "unitPrice": 95.0, "taxRate": 5},
			},
			"totalAmount": 199.5,
		},
	}
}

// SampleCustomers returns customers matching the sample invoices, again with
// mixed id and date field names.
func SampleCustomers(now time.Time) []map[string]any {
	return []map[string]any{
		{
			"id":        "cus_acme",
			"name":      "Acme Supplies",
			"email":     "billing@acme.example",
			"createdAt": now.AddDate(-1, 0, 0).Format(time.RFC3339),
		},
		{
			"_id":        "cus_harbor",
			"name":       "Harbor Cafe",
			"joinedDate": now.AddDate(0, 0, -12).Format("2006-01-02"),
		},
		{
			"id":        "cus_idle",
			"name":      fmt.Sprintf("Idle Holdings %d", now.Year()),
			"createdAt": now.AddDate(0, -2, 0).Format(time.RFC3339),
		},
	}
}
