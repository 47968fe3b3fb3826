package output

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	in := map[string]any{
		"count":   7,
		"avg":     Float(10.0/3.0, 2),
		"missing": Absent(),
		"nan":     math.NaN(),
		"when":    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		"label":   "hello",
		"nested": map[string]any{
			"inf": math.Inf(1),
		},
		"list": []any{Float(1.25, 1), "x", nil},
	}

	got := Normalize(in).(map[string]any)

	assert.Equal(t, 7, got["count"])
	assert.Equal(t, 3.33, got["avg"])
	assert.Nil(t, got["missing"])
	assert.Nil(t, got["nan"])
	assert.Equal(t, "2024-01-15T10:00:00", got["when"])
	assert.Equal(t, "hello", got["label"])
	assert.Nil(t, got["nested"].(map[string]any)["inf"])
	assert.Equal(t, []any{1.3, "x", nil}, got["list"])
}

func TestNormalize_Idempotent(t *testing.T) {
	in := map[string]any{
		"avg":  Float(2.675, 2),
		"nan":  math.NaN(),
		"when": Time(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)),
		"list": []any{math.Inf(-1), Float(1, 0)},
	}

	once := Normalize(in)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalize_Scalars(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Equal(t, true, Normalize(true))
	assert.Equal(t, "s", Normalize("s"))
	assert.Equal(t, 1.5, Normalize(1.5))
	assert.Equal(t, 1.5, Normalize(float32(1.5)))
	assert.Nil(t, Normalize(math.NaN()))
}
