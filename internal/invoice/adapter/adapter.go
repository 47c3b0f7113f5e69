// Package adapter maps between the API invoice representation and the
// normalized model. Both directions are total over arbitrary partial input;
// unusable values fall back to defaults instead of failing, since callers
// are forms holding half-filled state.
package adapter

import (
	"strconv"
	"time"

	"github.com/smallbiznis/invoicedesk/internal/clock"
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/pkg/coerce"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	Clock clock.Clock
}

type Adapter struct {
	log   *zap.Logger
	clock clock.Clock
}

func New(p Params) *Adapter {
	return &Adapter{
		log:   p.Log.Named("invoice.adapter"),
		clock: p.Clock,
	}
}

// FromAPI normalizes an invoice payload as returned by the API. Every field
// of the result is defined; the untouched source stays reachable via Raw.
func (a *Adapter) FromAPI(raw map[string]any) domain.Invoice {
	if raw == nil {
		raw = map[string]any{}
	}

	inv := domain.Invoice{
		ID:            coerce.StringOr(raw, "", "id", "_id"),
		InvoiceNumber: coerce.StringOr(raw, "", "invoiceNumber"),
		Status:        domain.InvoiceStatus(coerce.StringOr(raw, string(domain.StatusDraft), "status")),
		IssueDate:     a.dateString(raw, "date", "issueDate", "createdAt"),
		DueDate:       a.dateString(raw, "dueDate"),
		LineItems:     a.lineItems(raw),
		Subtotal:      a.floatOr(raw, 0, "subtotal"),
		TaxRate:       a.floatOr(raw, 0, "taxRateUsed", "taxRate"),
		TaxAmount:     a.taxAmount(raw),
		TotalAmount:   a.floatOr(raw, 0, "total", "totalAmount", "amount"),
		AmountPaid:    a.floatOr(raw, 0, "amountPaid"),
		Balance:       a.floatOr(raw, 0, "balance"),
		Currency:      coerce.StringOr(raw, "", "currency"),
		PaymentTerms:  coerce.StringOr(raw, "", "paymentTerms"),
		Notes:         coerce.StringOr(raw, "", "notes"),
		Terms:         coerce.StringOr(raw, "", "terms"),
		Raw:           raw,
	}
	if inv.Status == "" {
		inv.Status = domain.StatusDraft
	}

	a.flattenCustomer(raw, &inv)
	return inv
}

// flattenCustomer resolves the customer as an embedded object or a bare id.
// Fields from the embedded object win over top-level scalars.
func (a *Adapter) flattenCustomer(raw map[string]any, inv *domain.Invoice) {
	customerVal, _ := coerce.Lookup(raw, "customer")

	cust, _ := coerce.Map(customerVal)
	if cust == nil {
		inv.Customer = map[string]any{}
	} else {
		inv.Customer = cust
	}

	var bareID string
	if s, ok := customerVal.(string); ok {
		bareID = s
	}

	inv.CustomerID = firstNonEmpty(
		coerce.StringOr(cust, "", "id", "_id"),
		coerce.StringOr(raw, "", "customerId"),
		bareID,
	)
	inv.CustomerName = firstNonEmpty(
		coerce.StringOr(cust, "", "name"),
		coerce.StringOr(raw, "", "customerName"),
	)
	inv.CustomerEmail = firstNonEmpty(
		coerce.StringOr(cust, "", "email"),
		coerce.StringOr(raw, "", "customerEmail"),
	)
	inv.CustomerPhone = firstNonEmpty(
		coerce.StringOr(cust, "", "phone"),
		coerce.StringOr(raw, "", "customerPhone"),
	)
	inv.CustomerAddress = firstNonEmpty(
		coerce.StringOr(cust, "", "address"),
		coerce.StringOr(raw, "", "customerAddress"),
	)
}

func (a *Adapter) lineItems(raw map[string]any) []domain.LineItem {
	list := listField(raw, "items", "lineItems")

	items := make([]domain.LineItem, 0, len(list))
	for i, el := range list {
		m, ok := coerce.Map(el)
		if !ok {
			m = map[string]any{}
		}

		qty := a.intOr(m, 1, "quantity", "qty")
		rate := a.floatOr(m, 0, "unitPrice", "rate", "unit")

		item := domain.LineItem{
			ID:          coerce.StringOr(m, "", "id", "_id"),
			Description: coerce.StringOr(m, "", "description", "name"),
			Quantity:    qty,
			Rate:        rate,
			Tax:         a.floatOr(m, 0, "taxRate", "tax"),
			// A supplied amount is trusted; the derived default is the
			// untaxed line value.
			Amount:    a.floatOr(m, float64(qty)*rate, "total", "amount"),
			ProductID: productID(m),
			SKU:       coerce.StringOr(m, "", "sku"),
		}
		if item.ID == "" {
			item.ID = strconv.Itoa(i)
		}
		items = append(items, item)
	}
	return items
}

// taxAmount resolves the tax figure from the shapes the API has used over
// time: a flat taxAmount, a tax object with an amount, or a bare tax number.
func (a *Adapter) taxAmount(raw map[string]any) float64 {
	if v, ok := coerce.Lookup(raw, "taxAmount"); ok {
		return a.coerceFloat(v, 0, "taxAmount")
	}
	v, ok := coerce.Lookup(raw, "tax")
	if !ok {
		return 0
	}
	if m, isMap := coerce.Map(v); isMap {
		return a.floatOr(m, 0, "amount")
	}
	return a.coerceFloat(v, 0, "tax")
}

func (a *Adapter) dateString(m map[string]any, keys ...string) string {
	v, ok := coerce.Lookup(m, keys...)
	if !ok {
		return ""
	}
	if s, isStr := v.(string); isStr {
		return s
	}
	if t, parsed := coerce.Time(v); parsed {
		return t.UTC().Format(time.RFC3339)
	}
	return ""
}

func (a *Adapter) floatOr(m map[string]any, def float64, keys ...string) float64 {
	v, ok := coerce.Lookup(m, keys...)
	if !ok {
		return def
	}
	return a.coerceFloat(v, def, keys[0])
}

func (a *Adapter) intOr(m map[string]any, def int, keys ...string) int {
	v, ok := coerce.Lookup(m, keys...)
	if !ok {
		return def
	}
	i, parsed := coerce.Int(v)
	if !parsed {
		a.log.Debug("numeric field defaulted",
			zap.String("field", keys[0]),
			zap.Any("value", v),
			zap.Int("default", def),
		)
		return def
	}
	return i
}

func (a *Adapter) coerceFloat(v any, def float64, field string) float64 {
	f, parsed := coerce.Float(v)
	if !parsed {
		a.log.Debug("numeric field defaulted",
			zap.String("field", field),
			zap.Any("value", v),
			zap.Float64("default", def),
		)
		return def
	}
	return f
}

// listField returns the first key holding an actual array.
func listField(m map[string]any, keys ...string) []any {
	for _, key := range keys {
		if list, ok := coerce.Slice(m[key]); ok {
			return list
		}
	}
	return nil
}

func productID(m map[string]any) string {
	if v, ok := coerce.Lookup(m, "product"); ok {
		if pm, isMap := coerce.Map(v); isMap {
			return coerce.StringOr(pm, "", "id", "_id")
		}
		if s, isStr := coerce.String(v); isStr {
			return s
		}
	}
	return coerce.StringOr(m, "", "productId")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
