// Package domain contains the report shapes served to the dashboard.
package domain

import "time"

// Meta carries the descriptive parameters of a report request. It does not
// affect the computed statistics.
type Meta struct {
	Title     string `json:"title,omitempty"`
	Type      string `json:"type,omitempty"`
	Format    string `json:"format,omitempty"`
	DateRange string `json:"dateRange,omitempty"`
}

// Report is a complete generated report.
type Report struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	GeneratedAt  time.Time    `json:"generatedAt"`
	Type         string       `json:"type"`
	Format       string       `json:"format"`
	DateRange    string       `json:"dateRange"`
	Summary      Summary      `json:"summary"`
	Breakdown    Breakdown    `json:"breakdown"`
	MonthlyTrend []MonthPoint `json:"monthlyTrend"`
}

// Summary holds the aggregate counters. Pending figures fold the legacy
// "sent" status together with "pending".
type Summary struct {
	TotalInvoices   int     `json:"totalInvoices"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PaidInvoices    int     `json:"paidInvoices"`
	PaidAmount      float64 `json:"paidAmount"`
	PendingInvoices int     `json:"pendingInvoices"`
	PendingAmount   float64 `json:"pendingAmount"`
	OverdueInvoices int     `json:"overdueInvoices"`
	OverdueAmount   float64 `json:"overdueAmount"`
	TotalCustomers  int     `json:"totalCustomers"`
	NewCustomers    int     `json:"newCustomers"`
}

type Breakdown struct {
	ByStatus   map[string]StatusStat `json:"byStatus"`
	ByCustomer []CustomerRevenue     `json:"byCustomer"`
}

// StatusStat keeps per-status counts; unlike Summary, "sent" and "pending"
// stay distinct here.
type StatusStat struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// CustomerRevenue ranks a customer by summed invoice revenue.
type CustomerRevenue struct {
	CustomerID    string  `json:"customerId"`
	Name          string  `json:"name"`
	TotalAmount   float64 `json:"totalAmount"`
	TotalInvoices int     `json:"totalInvoices"`
}

// MonthPoint is one calendar month of the trend series.
type MonthPoint struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Invoices int     `json:"invoices"`
}
