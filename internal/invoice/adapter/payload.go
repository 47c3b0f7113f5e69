package adapter

import (
	"time"

	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/pkg/coerce"
	"go.uber.org/zap"
)

// BuildPayload assembles the API-bound invoice payload from form state.
// Dates are only included when the form supplies them; marking an invoice
// sent stamps sentDate with the current time when none was given.
func (a *Adapter) BuildPayload(form map[string]any) domain.InvoicePayload {
	if form == nil {
		form = map[string]any{}
	}

	status := domain.InvoiceStatus(coerce.StringOr(form, string(domain.StatusDraft), "status"))
	if status == "" {
		status = domain.StatusDraft
	}

	p := domain.InvoicePayload{
		InvoiceNumber: coerce.StringOr(form, "", "invoiceNumber"),
		Customer:      customerRef(form),
		Status:        status,
		Items:         a.payloadItems(form),
		Subtotal:      a.floatOr(form, 0, "subtotal"),
		Discount:      a.floatOr(form, 0, "discount"),
		Shipping:      a.floatOr(form, 0, "shipping"),
		Total:         a.floatOr(form, 0, "total", "totalAmount"),
		AmountPaid:    a.floatOr(form, 0, "amountPaid"),
		Currency:      coerce.StringOr(form, "", "currency"),
		PaymentTerms:  coerce.StringOr(form, "", "paymentTerms"),
		Notes:         coerce.StringOr(form, "", "notes"),
		Terms:         coerce.StringOr(form, "", "terms"),
	}

	if t, ok := coerce.TimeOr(form, "issueDate", "date"); ok {
		p.Date = timePtr(t)
	}
	if t, ok := coerce.TimeOr(form, "dueDate"); ok {
		p.DueDate = timePtr(t)
	}
	if t, ok := coerce.TimeOr(form, "sentDate", "sentAt"); ok {
		p.SentDate = timePtr(t)
	} else if status == domain.StatusSent {
		p.SentDate = timePtr(a.clock.Now())
	}

	// The API distinguishes "not set" from zero for these two, so they stay
	// nil when the form has nothing, unlike discount/shipping/amountPaid.
	p.TaxRateUsed = a.optionalFloat(form, "taxRateUsed", "taxRate")
	p.TaxAmount = a.optionalFloat(form, "taxAmount")

	return p
}

func (a *Adapter) payloadItems(form map[string]any) []domain.PayloadItem {
	list := listField(form, "lineItems", "items")

	items := make([]domain.PayloadItem, 0, len(list))
	for _, el := range list {
		m, ok := coerce.Map(el)
		if !ok {
			m = map[string]any{}
		}

		qty := a.intOr(m, 1, "quantity", "qty")
		unit := a.floatOr(m, 0, "unitPrice", "rate")
		taxRate := a.floatOr(m, 0, "taxRate", "tax")

		item := domain.PayloadItem{
			Description: coerce.StringOr(m, "", "description", "name"),
			Quantity:    qty,
			UnitPrice:   unit,
			TaxRate:     taxRate,
			ProductID:   productID(m),
			SKU:         coerce.StringOr(m, "", "sku"),
		}

		if v, present := coerce.Lookup(m, "total"); present {
			item.Total = a.coerceFloat(v, lineTotal(qty, unit, taxRate), "total")
		} else {
			item.Total = lineTotal(qty, unit, taxRate)
		}

		items = append(items, item)
	}
	return items
}

// lineTotal derives a gross line value including tax.
func lineTotal(qty int, unit, taxRate float64) float64 {
	base := float64(qty) * unit
	return base + base*taxRate/100
}

// customerRef resolves the customer reference for the payload: an explicit
// customerId, then an id inside an embedded customer object, then whatever
// the customer field holds.
func customerRef(form map[string]any) any {
	if id := coerce.StringOr(form, "", "customerId"); id != "" {
		return id
	}
	v, ok := coerce.Lookup(form, "customer")
	if !ok {
		return nil
	}
	if m, isMap := coerce.Map(v); isMap {
		if id := coerce.StringOr(m, "", "id", "_id"); id != "" {
			return id
		}
	}
	return v
}

func (a *Adapter) optionalFloat(m map[string]any, keys ...string) *float64 {
	v, ok := coerce.Lookup(m, keys...)
	if !ok {
		return nil
	}
	f, parsed := coerce.Float(v)
	if !parsed {
		a.log.Debug("numeric field dropped from payload",
			zap.String("field", keys[0]),
			zap.Any("value", v),
		)
		return nil
	}
	return &f
}

func timePtr(t time.Time) *time.Time { return &t }
