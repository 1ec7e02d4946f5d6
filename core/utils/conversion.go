package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToQty coerces a loosely typed quantity into a non-negative integer.
// Fractions are truncated; non-numeric, negative, NaN and infinite values become 0.
func ToQty(val any) int {
	var f float64
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint64:
		f = float64(v)
	case uint32:
		f = float64(v)
	case float64:
		f = v
	case float32:
		f = float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		f = parseNumber(v)
	case []byte:
		f = parseNumber(string(v))
	default:
		f = parseNumber(fmt.Sprintf("%v", v))
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// parseNumber parses a trimmed decimal string; blank or malformed input yields 0.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
