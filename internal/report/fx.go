package report

import (
	"github.com/smallbiznis/invoicedesk/internal/report/export"
	"github.com/smallbiznis/invoicedesk/internal/report/service"
	"go.uber.org/fx"
)

var Module = fx.Module("report.service",
	fx.Provide(
		service.NewService,
		export.NewExporter,
	),
)
