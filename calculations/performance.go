package calculations

import (
	"sort"

	"github.com/promptlens/promptlens/output"
)

// ModelStats is one per-model rollup.
type ModelStats struct {
	Model           string        `json:"model"`
	PromptCount     int           `json:"prompt_count"`
	TotalTokens     int           `json:"total_tokens"`
	AvgTokens       output.Number `json:"avg_tokens"`
	AvgQuality      output.Number `json:"avg_quality"`
	AvgResponseTime output.Number `json:"avg_response_time"`
	TotalCost       output.Number `json:"total_cost"`
	UsagePercentage output.Number `json:"usage_percentage"`
}

// ModelPerformance is the per-model view, sorted by usage count descending.
type ModelPerformance struct {
	Models []ModelStats `json:"models"`
}

type modelAccumulator struct {
	model           string
	count           int
	tokenSum        int
	qualitySum      float64
	responseTimeSum float64
	responseTimeN   int
	costSum         float64
}

// Models computes the model performance view. Optional columns aggregate
// over present values only; a model with no response-time samples reports 0
// when the column is absent dataset-wide, null otherwise. Returns nil when
// no data is loaded.
func (e *Engine) Models() *ModelPerformance {
	records := e.ds.Records()
	if len(records) == 0 {
		return nil
	}

	groups := make(map[string]*modelAccumulator)
	for _, r := range records {
		acc, ok := groups[r.Model]
		if !ok {
			acc = &modelAccumulator{model: r.Model}
			groups[r.Model] = acc
		}
		acc.count++
		acc.tokenSum += r.TokensUsed
		acc.qualitySum += r.ResponseQuality
		if r.ResponseTimeMS != nil {
			acc.responseTimeSum += *r.ResponseTimeMS
			acc.responseTimeN++
		}
		if r.CostUSD != nil {
			acc.costSum += *r.CostUSD
		}
	}

	total := float64(len(records))
	stats := make([]ModelStats, 0, len(groups))
	for _, acc := range groups {
		avgResponseTime := output.Float(0, 0)
		if e.ds.HasResponseTime() {
			avgResponseTime = output.Float(mean(acc.responseTimeSum, acc.responseTimeN), 0)
		}

		stats = append(stats, ModelStats{
			Model:           acc.model,
			PromptCount:     acc.count,
			TotalTokens:     acc.tokenSum,
			AvgTokens:       output.Float(mean(float64(acc.tokenSum), acc.count), 1),
			AvgQuality:      output.Float(mean(acc.qualitySum, acc.count), 2),
			AvgResponseTime: avgResponseTime,
			TotalCost:       output.Float(acc.costSum, 3),
			UsagePercentage: output.Float(float64(acc.count)/total*100, 1),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].PromptCount != stats[j].PromptCount {
			return stats[i].PromptCount > stats[j].PromptCount
		}
		return stats[i].Model < stats[j].Model
	})

	return &ModelPerformance{Models: stats}
}
