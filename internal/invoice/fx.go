package invoice

import (
	"github.com/smallbiznis/invoicedesk/internal/invoice/adapter"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.adapter",
	fx.Provide(adapter.New),
)
