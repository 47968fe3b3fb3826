package output

import (
	"math"
	"strconv"
	"time"
)

// TimeLayout is the boundary format for temporal values: ISO-8601 at second
// precision with no zone suffix.
const TimeLayout = "2006-01-02T15:04:05"

type numberKind int

const (
	kindAbsent numberKind = iota
	kindInt
	kindFloat
)

// Number is a tagged numeric value (integer | float | absent) carrying its
// boundary rounding. Aggregations compute on raw floats and wrap results in
// a Number; rounding and finite-checking happen only when the value is
// serialized, so chained computations never compound rounding error.
type Number struct {
	kind     numberKind
	i        int64
	f        float64
	decimals int
}

// Int wraps an integer value.
func Int(v int) Number {
	return Number{kind: kindInt, i: int64(v)}
}

// Int64 wraps a 64-bit integer value.
func Int64(v int64) Number {
	return Number{kind: kindInt, i: v}
}

// Float wraps a float value with the number of decimals to round to at the
// serialization boundary.
func Float(v float64, decimals int) Number {
	return Number{kind: kindFloat, f: v, decimals: decimals}
}

// Absent returns the missing-value Number, serialized as null.
func Absent() Number {
	return Number{kind: kindAbsent}
}

// JSON converts the Number to a JSON-safe primitive: int64, finite rounded
// float64, or nil for absent and non-finite values.
func (n Number) JSON() any {
	switch n.kind {
	case kindInt:
		return n.i
	case kindFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return nil
		}
		return roundTo(n.f, n.decimals)
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	switch v := n.JSON().(type) {
	case int64:
		return strconv.AppendInt(nil, v, 10), nil
	case float64:
		return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
	default:
		return []byte("null"), nil
	}
}

// Timestamp wraps a temporal value for boundary serialization.
type Timestamp struct {
	t time.Time
}

// Time wraps a time.Time.
func Time(t time.Time) Timestamp {
	return Timestamp{t: t}
}

// String formats the timestamp in the boundary layout, in UTC.
func (t Timestamp) String() string {
	return t.t.UTC().Format(TimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, t.String()), nil
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
