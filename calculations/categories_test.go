package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/models"
)

func TestCategories(t *testing.T) {
	engine := newTestEngine([]models.RawRecord{
		{Prompt: "abcd", UserID: "usr_001", Timestamp: "2024-01-15T10:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 100, ResponseQuality: 4},
		{Prompt: "ab", UserID: "usr_001", Timestamp: "2024-01-15T11:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 200, ResponseQuality: 5},
		{Prompt: "abcdef", UserID: "usr_002", Timestamp: "2024-01-15T12:00:00", Model: "claude-3-opus",
			Category: "business", TokensUsed: 300, ResponseQuality: 3},
	})

	view := engine.Categories()
	require.NotNil(t, view)
	require.Len(t, view.Categories, 2)

	top := view.Categories[0]
	assert.Equal(t, "technology", top.Category)
	assert.Equal(t, 2, top.PromptCount)
	assert.Equal(t, 150.0, top.AvgTokens.JSON())
	assert.Equal(t, 4.5, top.AvgQuality.JSON())
	assert.Equal(t, 3.0, top.AvgPromptLength.JSON())
	assert.Equal(t, 66.7, top.UsagePercentage.JSON())

	second := view.Categories[1]
	assert.Equal(t, "business", second.Category)
	assert.Equal(t, 6.0, second.AvgPromptLength.JSON())
	assert.Equal(t, 33.3, second.UsagePercentage.JSON())
}

func TestCategories_CountAndPercentageIdentities(t *testing.T) {
	records := []models.RawRecord{
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T10:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 10, ResponseQuality: 4},
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T11:00:00", Model: "gpt-4",
			Category: "business", TokensUsed: 10, ResponseQuality: 4},
		{Prompt: "p", UserID: "usr_002", Timestamp: "2024-01-15T12:00:00", Model: "gpt-4",
			Category: "design", TokensUsed: 10, ResponseQuality: 4},
		{Prompt: "p", UserID: "usr_002", Timestamp: "2024-01-15T13:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 10, ResponseQuality: 4},
		{Prompt: "p", UserID: "usr_003", Timestamp: "2024-01-15T14:00:00", Model: "gpt-4",
			Category: "business", TokensUsed: 10, ResponseQuality: 4},
		{Prompt: "p", UserID: "usr_003", Timestamp: "2024-01-15T15:00:00", Model: "gpt-4",
			Category: "technology", TokensUsed: 10, ResponseQuality: 4},
	}
	engine := newTestEngine(records)

	view := engine.Categories()
	require.NotNil(t, view)

	countSum := 0
	percentageSum := 0.0
	for _, c := range view.Categories {
		countSum += c.PromptCount
		percentageSum += c.UsagePercentage.JSON().(float64)
	}
	assert.Equal(t, engine.Overview().TotalPrompts, countSum)
	assert.InDelta(t, 100.0, percentageSum, 0.1)
}

func TestCategories_SortTieBreak(t *testing.T) {
	engine := newTestEngine([]models.RawRecord{
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T10:00:00", Model: "gpt-4",
			Category: "design", TokensUsed: 10, ResponseQuality: 4},
		{Prompt: "p", UserID: "usr_001", Timestamp: "2024-01-15T11:00:00", Model: "gpt-4",
			Category: "business", TokensUsed: 10, ResponseQuality: 4},
	})

	view := engine.Categories()
	require.NotNil(t, view)
	assert.Equal(t, "business", view.Categories[0].Category)
	assert.Equal(t, "design", view.Categories[1].Category)
}

func TestCategories_Empty(t *testing.T) {
	assert.Nil(t, newTestEngine(nil).Categories())
}
