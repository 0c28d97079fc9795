package mapper

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Model output is loosely typed: numbers arrive as strings, strings arrive
// padded. These getters accept what they can and report the rest as missing.

func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil {
			return int(f), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func objectValue(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func arrayValue(v any) []any {
	a, _ := v.([]any)
	return a
}
