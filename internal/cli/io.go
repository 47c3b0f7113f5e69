package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// readObjects decodes a JSON file holding either a single object or an
// array of objects. "-" reads stdin. Array entries that are not objects
// decode as empty objects, matching the adapter's tolerance for malformed
// input.
func readObjects(path string) (objects []map[string]any, single bool, err error) {
	var data []byte
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, false, fmt.Errorf("parsing %s: %w", path, err)
	}

	switch v := value.(type) {
	case map[string]any:
		return []map[string]any{v}, true, nil
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, el := range v {
			m, ok := el.(map[string]any)
			if !ok {
				m = map[string]any{}
			}
			out = append(out, m)
		}
		return out, false, nil
	default:
		return nil, false, fmt.Errorf("parsing %s: expected a JSON object or array", path)
	}
}

// openOutput returns the destination writer and a close function.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, f.Close, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
