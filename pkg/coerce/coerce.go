// Package coerce normalizes loosely-typed values decoded from JSON. API
// payloads arrive with several historical names for the same concept and
// values that may be strings, numbers, or nested objects; these helpers make
// the fallback order explicit and keep every conversion total.
package coerce

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Lookup returns the first defined (present and non-nil) value among keys,
// left to right.
func Lookup(m map[string]any, keys ...string) (any, bool) {
	if m == nil {
		return nil, false
	}
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String converts v to a string. Numeric identifiers are formatted rather
// than rejected, since older payloads carry numeric ids.
func String(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}

// Float converts v to a float64.
func Float(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int converts v to an int, truncating fractional values toward zero.
func Int(v any) (int, bool) {
	f, ok := Float(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Map returns v as an object when it is one.
func Map(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// Slice returns v as a list when it is one. Anything else, including a
// scalar stored under a list key, reads as absent.
func Slice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// Time converts v to a time.Time. Strings are tried against the layouts the
// API has historically emitted; numbers are unix seconds or milliseconds.
func Time(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case json.Number, float64, int, int64:
		f, ok := Float(v)
		if !ok {
			return time.Time{}, false
		}
		// Epochs past ~2001 in milliseconds are >1e12; seconds are not.
		if f > 1e12 {
			return time.UnixMilli(int64(f)).UTC(), true
		}
		return time.Unix(int64(f), 0).UTC(), true
	default:
		return time.Time{}, false
	}
}

// StringOr reads the first defined key and coerces it, falling back to def.
func StringOr(m map[string]any, def string, keys ...string) string {
	v, ok := Lookup(m, keys...)
	if !ok {
		return def
	}
	s, ok := String(v)
	if !ok {
		return def
	}
	return s
}

// FloatOr reads the first defined key and coerces it, falling back to def.
func FloatOr(m map[string]any, def float64, keys ...string) float64 {
	v, ok := Lookup(m, keys...)
	if !ok {
		return def
	}
	f, ok := Float(v)
	if !ok {
		return def
	}
	return f
}

// TimeOr reads the first defined key that parses as a time.
func TimeOr(m map[string]any, keys ...string) (time.Time, bool) {
	v, ok := Lookup(m, keys...)
	if !ok {
		return time.Time{}, false
	}
	return Time(v)
}
