// Where: internal/value/value.go
// What: Value conversion helpers for decoded manifest data.
// Why: Keep inspection logic concise without reflection noise.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// AsMap converts a value to map form when possible.
func AsMap(value any) map[string]any {
	if value == nil {
		return nil
	}
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return nil
}

// AsSlice converts a value to slice form, wrapping scalars when needed.
func AsSlice(value any) []any {
	if value == nil {
		return nil
	}
	if v, ok := value.([]any); ok {
		return v
	}
	return []any{value}
}

// AsString returns the string representation of a value.
func AsString(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// AsStringDefault returns a string representation or the fallback.
func AsStringDefault(value any, fallback string) string {
	if out := AsString(value); out != "" {
		return out
	}
	return fallback
}

// AsStringSlice converts a value to a slice of strings.
func AsStringSlice(value any) []string {
	parts := AsSlice(value)
	if parts == nil {
		return nil
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, AsString(part))
	}
	return out
}

// AsIntPointer attempts to coerce a value into an int pointer.
func AsIntPointer(value any) (*int, bool) {
	switch typed := value.(type) {
	case int:
		return &typed, true
	case int64:
		intVal := int(typed)
		return &intVal, true
	case float64:
		intVal := int(typed)
		return &intVal, true
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil {
			return &parsed, true
		}
	}
	return nil, false
}

// AsInt converts a value to int, returning 0 when conversion fails.
func AsInt(value any) int {
	if val, ok := AsIntPointer(value); ok {
		return *val
	}
	return 0
}
