// Package library reads the reference exercise library from JSON. Rows are
// loosely typed: keys vary in case and values may be strings, numbers,
// booleans, or lists.
package library

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
)

// LoadFile reads and parses a library JSON file.
func LoadFile(path string) ([]domain.ExerciseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	recs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing library file %s: %w", path, err)
	}
	return recs, nil
}

// Parse decodes a JSON array of exercise rows, preserving row order. Rows
// that are not JSON objects are skipped.
func Parse(data []byte) ([]domain.ExerciseRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rows []json.RawMessage
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("library must be a JSON array of objects: %w", err)
	}

	recs := make([]domain.ExerciseRecord, 0, len(rows))
	for _, raw := range rows {
		row, ok := decodeRow(raw)
		if !ok {
			continue
		}
		recs = append(recs, domain.ExerciseFromFields(row))
	}
	return recs, nil
}

func decodeRow(raw json.RawMessage) (map[string]string, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	fields := make(map[string]string, len(obj))
	for k, v := range obj {
		fields[k] = stringify(v)
	}
	return fields, true
}

// stringify renders a decoded JSON value as display text.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, ",")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
