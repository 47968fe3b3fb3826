package output

import (
	"math"
	"time"
)

// Normalize converts an arbitrary aggregation output into JSON-safe
// primitives: tagged numbers collapse to int/float/nil, non-finite floats
// become nil, temporal values become boundary-format strings, and mappings
// and sequences are walked recursively. Strings and booleans pass through
// unchanged. Normalize is idempotent: its output normalizes to itself.
func Normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case Number:
		return val.JSON()
	case Timestamp:
		return val.String()
	case time.Time:
		return Time(val).String()
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case float32:
		return Normalize(float64(val))
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	default:
		return v
	}
}
