package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// encodeExtra serialises unrecognised library columns for the extra_json column.
func encodeExtra(extra map[string]string) (string, error) {
	if len(extra) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(extra)
	if err != nil {
		return "", fmt.Errorf("encoding extra columns: %w", err)
	}
	return string(b), nil
}

func decodeExtra(s string) (map[string]string, error) {
	if s == "" || s == "{}" {
		return nil, nil
	}
	var extra map[string]string
	if err := json.Unmarshal([]byte(s), &extra); err != nil {
		return nil, fmt.Errorf("decoding extra columns: %w", err)
	}
	return extra, nil
}

// parseTime parses an RFC3339 column, returning the zero time on failure.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
