package service

import (
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicedesk/internal/clock"
	"github.com/smallbiznis/invoicedesk/internal/config"
	reportdomain "github.com/smallbiznis/invoicedesk/internal/report/domain"
	"github.com/smallbiznis/invoicedesk/pkg/coerce"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Clock     clock.Clock
	GenID     *snowflake.Node
	ReportCfg *config.ReportConfigHolder `optional:"true"`
}

type Service struct {
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	cfg   *config.ReportConfigHolder
}

func NewService(p Params) reportdomain.Service {
	return &Service{
		log:   p.Log.Named("report.service"),
		clock: p.Clock,
		genID: p.GenID,
		cfg:   p.ReportCfg,
	}
}

// Generate computes summary counters, a status breakdown, a top-customer
// ranking, and a monthly trend over the clock's current calendar year.
func (s *Service) Generate(invoices, customers []map[string]any, meta reportdomain.Meta) reportdomain.Report {
	now := s.clock.Now()
	cfg := s.reportConfig()

	report := reportdomain.Report{
		Title:       firstNonEmpty(meta.Title, cfg.Title),
		GeneratedAt: now,
		Type:        firstNonEmpty(meta.Type, cfg.Type),
		Format:      firstNonEmpty(meta.Format, cfg.Format),
		DateRange:   meta.DateRange,
	}
	if s.genID != nil {
		report.ID = s.genID.Generate().String()
	}

	report.Summary = s.summarize(invoices, customers, now, cfg)
	report.Breakdown = reportdomain.Breakdown{
		ByStatus:   s.byStatus(invoices),
		ByCustomer: s.topCustomers(invoices, customers, cfg.TopCustomers),
	}
	report.MonthlyTrend = s.monthlyTrend(invoices, now)

	s.log.Debug("report generated",
		zap.String("report_id", report.ID),
		zap.Int("invoices", len(invoices)),
		zap.Int("customers", len(customers)),
	)
	return report
}

func (s *Service) summarize(invoices, customers []map[string]any, now time.Time, cfg config.ReportConfig) reportdomain.Summary {
	summary := reportdomain.Summary{
		TotalCustomers: len(customers),
	}

	for _, inv := range invoices {
		revenue := revenueOf(inv)
		summary.TotalInvoices++
		summary.TotalRevenue += revenue

		switch statusOf(inv) {
		case "paid":
			summary.PaidInvoices++
			summary.PaidAmount += revenue
		case "pending", "sent":
			summary.PendingInvoices++
			summary.PendingAmount += revenue
		case "overdue":
			summary.OverdueInvoices++
			summary.OverdueAmount += revenue
		}
	}

	cutoff := now.Add(-time.Duration(cfg.NewCustomerWindowDays) * 24 * time.Hour)
	for _, c := range customers {
		created, ok := coerce.TimeOr(c, "createdAt", "joinedDate")
		if ok && !created.Before(cutoff) {
			summary.NewCustomers++
		}
	}

	return summary
}

func (s *Service) byStatus(invoices []map[string]any) map[string]reportdomain.StatusStat {
	stats := make(map[string]reportdomain.StatusStat)
	for _, inv := range invoices {
		status := statusOf(inv)
		stat := stats[status]
		stat.Count++
		stat.Amount += revenueOf(inv)
		stats[status] = stat
	}
	return stats
}

// topCustomers joins customers to invoices by id (normalized linkage) or by
// name against a scalar customer field (legacy linkage), ranks by summed
// revenue, and truncates. The sort is stable so equal-revenue customers keep
// input order.
func (s *Service) topCustomers(invoices, customers []map[string]any, limit int) []reportdomain.CustomerRevenue {
	ranked := make([]reportdomain.CustomerRevenue, 0, len(customers))

	for _, c := range customers {
		id := coerce.StringOr(c, "", "id", "_id")
		name := coerce.StringOr(c, "", "name")

		entry := reportdomain.CustomerRevenue{CustomerID: id, Name: name}
		for _, inv := range invoices {
			if !invoiceBelongsTo(inv, id, name) {
				continue
			}
			entry.TotalInvoices++
			entry.TotalAmount += revenueOf(inv)
		}
		if entry.TotalInvoices == 0 {
			continue
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalAmount > ranked[j].TotalAmount
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// monthlyTrend covers the twelve months of now's calendar year. Invoices
// dated in a different year are excluded; pin the clock to target another
// year.
func (s *Service) monthlyTrend(invoices []map[string]any, now time.Time) []reportdomain.MonthPoint {
	trend := make([]reportdomain.MonthPoint, 12)
	for i := range trend {
		trend[i].Month = time.Month(i + 1).String()[:3]
	}

	for _, inv := range invoices {
		issued, ok := coerce.TimeOr(inv, "issueDate", "createdAt")
		if !ok || issued.Year() != now.Year() {
			continue
		}
		point := &trend[int(issued.Month())-1]
		point.Revenue += revenueOf(inv)
		point.Invoices++
	}
	return trend
}

func (s *Service) reportConfig() config.ReportConfig {
	if s.cfg == nil {
		return config.DefaultReportConfig()
	}
	return s.cfg.Get()
}

func invoiceBelongsTo(inv map[string]any, customerID, customerName string) bool {
	if customerID != "" && coerce.StringOr(inv, "", "customerId") == customerID {
		return true
	}
	if customerName == "" {
		return false
	}
	// Legacy invoices store the customer name as a bare string.
	if name, ok := inv["customer"].(string); ok && name == customerName {
		return true
	}
	return false
}

// revenueOf reads the invoice money field, tolerating the legacy name. A
// zero totalAmount falls through to amount, mirroring the dashboard's
// historical behavior.
func revenueOf(inv map[string]any) float64 {
	if v := coerce.FloatOr(inv, 0, "totalAmount"); v != 0 {
		return v
	}
	return coerce.FloatOr(inv, 0, "amount")
}

func statusOf(inv map[string]any) string {
	return strings.ToLower(strings.TrimSpace(coerce.StringOr(inv, "", "status")))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
