package cli

import (
	"errors"

	reportdomain "github.com/smallbiznis/invoicedesk/internal/report/domain"
	"github.com/smallbiznis/invoicedesk/internal/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReportCommand() *cobra.Command {
	var (
		invoicesPath  string
		customersPath string
		title         string
		reportType    string
		format        string
		dateRange     string
		out           string
		sample        bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a summary report from invoices and customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !sample && invoicesPath == "" {
				return errors.New("either --invoices or --sample is required")
			}

			return runApp(func(d Deps) error {
				var (
					invoices  []map[string]any
					customers []map[string]any
					err       error
				)

				if sample {
					now := d.Clock.Now()
					invoices = seed.SampleInvoices(now)
					customers = seed.SampleCustomers(now)
				} else {
					invoices, _, err = readObjects(invoicesPath)
					if err != nil {
						return err
					}
					if customersPath != "" {
						customers, _, err = readObjects(customersPath)
						if err != nil {
							return err
						}
					}
				}

				rep := d.ReportSvc.Generate(invoices, customers, reportdomain.Meta{
					Title:     title,
					Type:      reportType,
					Format:    format,
					DateRange: dateRange,
				})
				d.Log.Info("report generated",
					zap.String("report_id", rep.ID),
					zap.Int("invoices", rep.Summary.TotalInvoices),
				)

				w, closeFn, err := openOutput(out)
				if err != nil {
					return err
				}
				defer closeFn()

				return d.Exporter.Write(w, rep, rep.Format)
			})
		},
	}

	cmd.Flags().StringVar(&invoicesPath, "invoices", "", "path to invoices JSON (object or array)")
	cmd.Flags().StringVar(&customersPath, "customers", "", "path to customers JSON")
	cmd.Flags().StringVar(&title, "title", "", "report title")
	cmd.Flags().StringVar(&reportType, "type", "", "report type")
	cmd.Flags().StringVar(&format, "format", "", "output format: json, yaml, or csv")
	cmd.Flags().StringVar(&dateRange, "range", "", "date range label attached to the report")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&sample, "sample", false, "use built-in sample data")
	return cmd
}
