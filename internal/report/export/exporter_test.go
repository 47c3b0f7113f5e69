package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/smallbiznis/invoicedesk/internal/report/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func sampleReport() domain.Report {
	return domain.Report{
		ID:          "123",
		Title:       "Q3 Revenue",
		GeneratedAt: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		Type:        "summary",
		Format:      "json",
		Summary: domain.Summary{
			TotalInvoices: 2,
			TotalRevenue:  435.6,
		},
		Breakdown: domain.Breakdown{
			ByStatus: map[string]domain.StatusStat{
				"paid": {Count: 2, Amount: 435.6},
			},
			ByCustomer: []domain.CustomerRevenue{
				{CustomerID: "a", Name: "Acme", TotalAmount: 435.6, TotalInvoices: 2},
			},
		},
		MonthlyTrend: make([]domain.MonthPoint, 12),
	}
}

func TestWriteJSON(t *testing.T) {
	e := NewExporter(zap.NewNop())
	var buf bytes.Buffer

	require.NoError(t, e.Write(&buf, sampleReport(), "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Q3 Revenue", decoded["title"])
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "monthlyTrend")
}

func TestWriteYAML(t *testing.T) {
	e := NewExporter(zap.NewNop())
	var buf bytes.Buffer

	require.NoError(t, e.Write(&buf, sampleReport(), "yaml"))

	var decoded domain.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Q3 Revenue", decoded.Title)
	assert.Equal(t, 2, decoded.Summary.TotalInvoices)
}

func TestWriteCSV(t *testing.T) {
	e := NewExporter(zap.NewNop())
	var buf bytes.Buffer

	require.NoError(t, e.Write(&buf, sampleReport(), "csv"))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Report", "Q3 Revenue"}, rows[0])

	var foundCustomer bool
	for _, row := range rows {
		if len(row) == 3 && row[0] == "Acme" {
			foundCustomer = true
			assert.Equal(t, "435.60", row[1])
			assert.Equal(t, "2", row[2])
		}
	}
	assert.True(t, foundCustomer)
}

func TestWriteUnknownFormatFallsBackToJSON(t *testing.T) {
	e := NewExporter(zap.NewNop())
	var buf bytes.Buffer

	require.NoError(t, e.Write(&buf, sampleReport(), "xlsx"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}
