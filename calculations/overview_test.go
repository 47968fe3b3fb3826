package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/models"
)

func TestOverview(t *testing.T) {
	engine := newTestEngine([]models.RawRecord{
		{Prompt: "first", User: "Alice", UserID: "usr_001", Timestamp: "2024-01-15T10:00:00",
			Model: "gpt-4", Category: "technology", TokensUsed: 100, ResponseQuality: 1, CostUSD: fptr(0.1)},
		{Prompt: "second", User: "Alice", UserID: "usr_001", Timestamp: "2024-01-16T12:30:00",
			Model: "gpt-4", Category: "technology", TokensUsed: 200, ResponseQuality: 4, CostUSD: fptr(0.2)},
		{Prompt: "third", User: "Bob", UserID: "usr_002", Timestamp: "2024-01-14T08:00:00Z",
			Model: "claude-3-opus", Category: "business", TokensUsed: 300, ResponseQuality: 5},
	})

	view := engine.Overview()
	require.NotNil(t, view)

	assert.Equal(t, 3, view.TotalPrompts)
	assert.Equal(t, 2, view.UniqueUsers)
	assert.Equal(t, 600, view.TotalTokens)
	assert.Equal(t, 3.33, view.AvgQuality.JSON())
	assert.Equal(t, 0.3, view.TotalCost.JSON())
	assert.Equal(t, "2024-01-14T08:00:00", view.DateRange.Start.String())
	assert.Equal(t, "2024-01-16T12:30:00", view.DateRange.End.String())
}

func TestOverview_Empty(t *testing.T) {
	engine := newTestEngine(nil)
	assert.Nil(t, engine.Overview())
}

func TestOverview_PartialCostSums(t *testing.T) {
	records := []models.RawRecord{
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T10:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 10, ResponseQuality: 4, CostUSD: fptr(0.1)},
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T11:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 10, ResponseQuality: 4},
		{Prompt: "p", UserID: "usr_002", Timestamp: "2024-01-15T12:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 10, ResponseQuality: 4, CostUSD: fptr(0.25)},
	}
	engine := newTestEngine(records)

	// Only present values contribute, both here and in the per-model rollup.
	overview := engine.Overview()
	require.NotNil(t, overview)
	assert.Equal(t, 0.35, overview.TotalCost.JSON())

	perf := engine.Models()
	require.NotNil(t, perf)
	assert.Equal(t, 0.35, perf.Models[0].TotalCost.JSON())
}

func TestOverview_NoCostColumn(t *testing.T) {
	engine := newTestEngine([]models.RawRecord{
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T10:00:00",
			Model: "gpt-4", Category: "technology", TokensUsed: 50, ResponseQuality: 4},
	})

	view := engine.Overview()
	require.NotNil(t, view)
	assert.Equal(t, 0.0, view.TotalCost.JSON())
}
