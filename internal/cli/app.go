// Package cli implements the invoicedesk command-line interface. Each
// command assembles the application graph, runs its action, and exits.
package cli

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	"github.com/smallbiznis/invoicedesk/internal/clock"
	"github.com/smallbiznis/invoicedesk/internal/config"
	"github.com/smallbiznis/invoicedesk/internal/invoice"
	"github.com/smallbiznis/invoicedesk/internal/invoice/adapter"
	"github.com/smallbiznis/invoicedesk/internal/logger"
	"github.com/smallbiznis/invoicedesk/internal/report"
	reportdomain "github.com/smallbiznis/invoicedesk/internal/report/domain"
	"github.com/smallbiznis/invoicedesk/internal/report/export"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Deps bundles everything a command action can use.
type Deps struct {
	fx.In

	Log       *zap.Logger
	Clock     clock.Clock
	GenID     *snowflake.Node
	Adapter   *adapter.Adapter
	ReportSvc reportdomain.Service
	Exporter  *export.Exporter
}

// runApp builds the fx graph, tags all log output with a per-run correlation
// id, and executes fn.
func runApp(fn func(Deps) error) error {
	runID := ulid.Make().String()
	var runErr error

	app := fx.New(
		fx.NopLogger,
		config.Module,
		logger.Module,
		clock.Module,
		fx.Provide(newSnowflakeNode),
		invoice.Module,
		report.Module,
		fx.Decorate(func(log *zap.Logger) *zap.Logger {
			return log.With(zap.String("correlation_id", runID))
		}),
		fx.Invoke(func(d Deps) {
			runErr = fn(d)
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	stopErr := app.Stop(ctx)
	if runErr != nil {
		return runErr
	}
	return stopErr
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
