// Package export writes generated reports to the supported output formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/smallbiznis/invoicedesk/internal/report/domain"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Exporter struct {
	log *zap.Logger
}

func NewExporter(log *zap.Logger) *Exporter {
	return &Exporter{log: log.Named("report.export")}
}

// Write encodes the report in the requested format. Unknown formats fall
// back to JSON with a warning, keeping export total like the generator.
func (e *Exporter) Write(w io.Writer, r domain.Report, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return e.writeJSON(w, r)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report as yaml: %w", err)
		}
		return nil
	case "csv":
		return e.writeCSV(w, r)
	default:
		e.log.Warn("unknown report format, writing json", zap.String("format", format))
		return e.writeJSON(w, r)
	}
}

func (e *Exporter) writeJSON(w io.Writer, r domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report as json: %w", err)
	}
	return nil
}

func (e *Exporter) writeCSV(w io.Writer, r domain.Report) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Report", r.Title},
		{"Generated At", r.GeneratedAt.Format(time.RFC3339)},
		{"Type", r.Type},
		{"Date Range", r.DateRange},
		{},
		{"Total Invoices", strconv.Itoa(r.Summary.TotalInvoices)},
		{"Total Revenue", money(r.Summary.TotalRevenue)},
		{"Paid Invoices", strconv.Itoa(r.Summary.PaidInvoices)},
		{"Paid Amount", money(r.Summary.PaidAmount)},
		{"Pending Invoices", strconv.Itoa(r.Summary.PendingInvoices)},
		{"Pending Amount", money(r.Summary.PendingAmount)},
		{"Overdue Invoices", strconv.Itoa(r.Summary.OverdueInvoices)},
		{"Overdue Amount", money(r.Summary.OverdueAmount)},
		{"Total Customers", strconv.Itoa(r.Summary.TotalCustomers)},
		{"New Customers", strconv.Itoa(r.Summary.NewCustomers)},
		{},
		{"Customer", "Revenue", "Invoices"},
	}
	for _, c := range r.Breakdown.ByCustomer {
		rows = append(rows, []string{c.Name, money(c.TotalAmount), strconv.Itoa(c.TotalInvoices)})
	}

	rows = append(rows, nil, []string{"Month", "Revenue", "Invoices"})
	for _, p := range r.MonthlyTrend {
		rows = append(rows, []string{p.Month, money(p.Revenue), strconv.Itoa(p.Invoices)})
	}

	for _, row := range rows {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing report csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing report csv: %w", err)
	}
	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
