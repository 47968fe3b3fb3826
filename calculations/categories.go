package calculations

import (
	"sort"

	"github.com/promptlens/promptlens/output"
)

// CategoryStats is one per-category rollup.
type CategoryStats struct {
	Category        string        `json:"category"`
	PromptCount     int           `json:"prompt_count"`
	AvgTokens       output.Number `json:"avg_tokens"`
	AvgQuality      output.Number `json:"avg_quality"`
	AvgPromptLength output.Number `json:"avg_prompt_length"`
	UsagePercentage output.Number `json:"usage_percentage"`
}

// CategoryAnalysis is the per-category view, sorted by usage count
// descending.
type CategoryAnalysis struct {
	Categories []CategoryStats `json:"categories"`
}

type categoryAccumulator struct {
	category        string
	count           int
	tokenSum        int
	qualitySum      float64
	promptLengthSum int
}

// Categories computes the category analysis view. Returns nil when no data
// is loaded.
func (e *Engine) Categories() *CategoryAnalysis {
	records := e.ds.Records()
	if len(records) == 0 {
		return nil
	}

	groups := make(map[string]*categoryAccumulator)
	for _, r := range records {
		acc, ok := groups[r.Category]
		if !ok {
			acc = &categoryAccumulator{category: r.Category}
			groups[r.Category] = acc
		}
		acc.count++
		acc.tokenSum += r.TokensUsed
		acc.qualitySum += r.ResponseQuality
		acc.promptLengthSum += r.PromptLength
	}

	total := float64(len(records))
	stats := make([]CategoryStats, 0, len(groups))
	for _, acc := range groups {
		stats = append(stats, CategoryStats{
			Category:        acc.category,
			PromptCount:     acc.count,
			AvgTokens:       output.Float(mean(float64(acc.tokenSum), acc.count), 1),
			AvgQuality:      output.Float(mean(acc.qualitySum, acc.count), 2),
			AvgPromptLength: output.Float(mean(float64(acc.promptLengthSum), acc.count), 1),
			UsagePercentage: output.Float(float64(acc.count)/total*100, 1),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].PromptCount != stats[j].PromptCount {
			return stats[i].PromptCount > stats[j].PromptCount
		}
		return stats[i].Category < stats[j].Category
	})

	return &CategoryAnalysis{Categories: stats}
}
