package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/models"
)

func TestModels(t *testing.T) {
	engine := newTestEngine([]models.RawRecord{
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T10:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 100, ResponseQuality: 4, ResponseTimeMS: fptr(100), CostUSD: fptr(0.1)},
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T11:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 200, ResponseQuality: 5, ResponseTimeMS: fptr(200), CostUSD: fptr(0.2)},
		{Prompt: "p", UserID: "usr_002", Timestamp: "2024-01-15T12:00:00", Model: "claude-3-opus",
			Category: "business", TokensUsed: 300, ResponseQuality: 3},
	})

	view := engine.Models()
	require.NotNil(t, view)
	require.Len(t, view.Models, 2)

	top := view.Models[0]
	assert.Equal(t, "gpt-4", top.Model)
	assert.Equal(t, 2, top.PromptCount)
	assert.Equal(t, 300, top.TotalTokens)
	assert.Equal(t, 150.0, top.AvgTokens.JSON())
	assert.Equal(t, 4.5, top.AvgQuality.JSON())
	assert.Equal(t, 150.0, top.AvgResponseTime.JSON())
	assert.InDelta(t, 0.3, top.TotalCost.JSON().(float64), 1e-9)
	assert.Equal(t, 66.7, top.UsagePercentage.JSON())

	// The column exists dataset-wide but this model has no samples.
	other := view.Models[1]
	assert.Equal(t, "claude-3-opus", other.Model)
	assert.Nil(t, other.AvgResponseTime.JSON())
	assert.Equal(t, 33.3, other.UsagePercentage.JSON())
}

func TestModels_NoResponseTimeColumn(t *testing.T) {
	engine := newTestEngine([]models.RawRecord{
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T10:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 100, ResponseQuality: 4},
	})

	view := engine.Models()
	require.NotNil(t, view)
	assert.Equal(t, 0.0, view.Models[0].AvgResponseTime.JSON())
}

func TestModels_SortTieBreak(t *testing.T) {
	engine := newTestEngine([]models.RawRecord{
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T10:00:00", Model: "gemini-pro",
			Category: "technology", TokensUsed: 10, ResponseQuality: 4},
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T11:00:00", Model: "claude-3-opus",
			Category: "technology", TokensUsed: 10, ResponseQuality: 4},
	})

	view := engine.Models()
	require.NotNil(t, view)
	require.Len(t, view.Models, 2)
	assert.Equal(t, "claude-3-opus", view.Models[0].Model)
	assert.Equal(t, "gemini-pro", view.Models[1].Model)
}

func TestModels_Empty(t *testing.T) {
	assert.Nil(t, newTestEngine(nil).Models())
}
