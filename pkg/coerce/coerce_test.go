package coerce

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupOrder(t *testing.T) {
	m := map[string]any{"b": 2.0, "c": 3.0, "nil": nil}

	v, ok := Lookup(m, "a", "b", "c")
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	_, ok = Lookup(m, "a", "missing")
	assert.False(t, ok)

	// nil values read as absent.
	_, ok = Lookup(m, "nil")
	assert.False(t, ok)

	_, ok = Lookup(nil, "a")
	assert.False(t, ok)
}

func TestFloatConversions(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{42.5, 42.5, true},
		{7, 7, true},
		{int64(9), 9, true},
		{" 12.5 ", 12.5, true},
		{json.Number("3.25"), 3.25, true},
		{"twelve", 0, false},
		{true, 0, false},
		{map[string]any{}, 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := Float(tc.in)
		assert.Equal(t, tc.ok, ok, "input %v", tc.in)
		assert.Equal(t, tc.want, got, "input %v", tc.in)
	}
}

func TestIntTruncates(t *testing.T) {
	got, ok := Int(2.9)
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestStringFormatsNumericIDs(t *testing.T) {
	got, ok := String(12345.0)
	require.True(t, ok)
	assert.Equal(t, "12345", got)

	got, ok = String("plain")
	require.True(t, ok)
	assert.Equal(t, "plain", got)

	_, ok = String(map[string]any{})
	assert.False(t, ok)
}

func TestTimeLayouts(t *testing.T) {
	want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	for _, in := range []any{"2026-03-09", "2026/03/09", "2026-03-09T00:00:00Z"} {
		got, ok := Time(in)
		require.True(t, ok, "input %v", in)
		assert.True(t, got.Equal(want), "input %v", in)
	}

	_, ok := Time("last tuesday")
	assert.False(t, ok)
	_, ok = Time("")
	assert.False(t, ok)
}

func TestTimeEpochs(t *testing.T) {
	want := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	got, ok := Time(float64(want.Unix()))
	require.True(t, ok)
	assert.True(t, got.Equal(want))

	got, ok = Time(float64(want.UnixMilli()))
	require.True(t, ok)
	assert.True(t, got.Equal(want))
}

func TestOrHelpers(t *testing.T) {
	m := map[string]any{"amount": "oops", "total": 5.0, "name": "Acme"}

	// The first defined key wins even when it fails to parse; the helper
	// falls back to the default, not the next key.
	assert.Equal(t, 0.0, FloatOr(m, 0, "amount", "total"))
	assert.Equal(t, 5.0, FloatOr(m, 0, "total"))
	assert.Equal(t, 9.0, FloatOr(m, 9, "missing"))
	assert.Equal(t, "Acme", StringOr(m, "", "missing", "name"))
}
