// Package jsonutil provides shared helpers for loosely typed JSON payloads:
// error wrapping, object decoding and field extraction.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeStrict decodes a single JSON value from r into v, rejecting unknown
// fields and trailing data.
func DecodeStrict(r io.Reader, v any, context string) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	if dec.More() {
		return fmt.Errorf("%s: trailing data after JSON value", context)
	}
	return nil
}

// DecodeObject parses data as a JSON object. Arrays, scalars and invalid
// JSON are errors.
func DecodeObject(data []byte, context string) (map[string]any, error) {
	var m map[string]any
	if err := UnmarshalWithContext(data, &m, context); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%s: not a JSON object", context)
	}
	return m, nil
}

// GetString safely extracts a string value from a decoded object.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// ToString converts a decoded JSON value to a string representation.
// Whole numbers print without a fractional part.
func ToString(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
