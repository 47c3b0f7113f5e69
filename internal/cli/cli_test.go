package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "normalize")
	assert.Contains(t, names, "payload")
	assert.Contains(t, names, "report")
}

func TestReportCommandRequiresInput(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"report"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.Execute()
	require.Error(t, err)
}

func TestReportCommandSampleData(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	root := NewRootCommand()
	root.SetArgs([]string{"report", "--sample", "--format", "json", "--out", out})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var rep map[string]any
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Contains(t, rep, "summary")
	assert.Contains(t, rep, "monthlyTrend")

	trend, ok := rep["monthlyTrend"].([]any)
	require.True(t, ok)
	assert.Len(t, trend, 12)
}

func TestNormalizeCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "invoice.json")
	out := filepath.Join(dir, "normalized.json")

	payload := []byte(`{"invoiceNumber":"INV-1","customer":"Acme","items":[{"qty":2,"rate":10}]}`)
	require.NoError(t, os.WriteFile(in, payload, 0o644))

	root := NewRootCommand()
	root.SetArgs([]string{"normalize", in, "--out", out})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var inv map[string]any
	require.NoError(t, json.Unmarshal(data, &inv))
	assert.Equal(t, "INV-1", inv["invoiceNumber"])
	assert.Equal(t, "Acme", inv["customerId"])
	assert.Equal(t, "draft", inv["status"])

	items, ok := inv["lineItems"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, 20.0, item["amount"])
}
