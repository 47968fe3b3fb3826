package output

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleFormatter_Section(t *testing.T) {
	f := NewConsoleFormatter()

	out := f.Section("Overview", map[string]any{
		"total_prompts": 3,
		"avg_quality":   Float(10.0/3.0, 2),
		"date_range": map[string]any{
			"start": Time(time.Date(2024, 1, 14, 8, 0, 0, 0, time.UTC)),
		},
	})

	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "total_prompts")
	assert.Contains(t, out, "3.33")
	assert.Contains(t, out, "2024-01-14T08:00:00")
}

func TestConsoleFormatter_SectionNoData(t *testing.T) {
	f := NewConsoleFormatter()
	out := f.Section("Users", nil)
	assert.Contains(t, out, "(no data)")
}

func TestConsoleFormatter_JSON(t *testing.T) {
	f := NewConsoleFormatter()

	text, err := f.JSON(map[string]any{
		"avg": Float(1.0/3.0, 2),
		"n":   2,
	})
	require.NoError(t, err)

	assert.True(t, strings.Contains(text, "0.33"))
	assert.True(t, strings.Contains(text, `"n"`))
}
