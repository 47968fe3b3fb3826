package calculations

import (
	"time"

	"github.com/promptlens/promptlens/output"
)

// Overview is the dataset-wide summary view.
type Overview struct {
	TotalPrompts int           `json:"total_prompts"`
	UniqueUsers  int           `json:"unique_users"`
	DateRange    DateRange     `json:"date_range"`
	TotalTokens  int           `json:"total_tokens"`
	AvgQuality   output.Number `json:"avg_quality"`
	TotalCost    output.Number `json:"total_cost"`
}

// DateRange is the min/max timestamp span of the dataset.
type DateRange struct {
	Start output.Timestamp `json:"start"`
	End   output.Timestamp `json:"end"`
}

// Overview computes the overview view. Returns nil when no data is loaded.
func (e *Engine) Overview() *Overview {
	records := e.ds.Records()
	if len(records) == 0 {
		return nil
	}

	users := make(map[string]bool)
	var minTS, maxTS time.Time
	totalTokens := 0
	qualitySum := 0.0
	costSum := 0.0

	for i, r := range records {
		users[r.UserID] = true
		totalTokens += r.TokensUsed
		qualitySum += r.ResponseQuality
		if r.CostUSD != nil {
			costSum += *r.CostUSD
		}
		if i == 0 || r.Timestamp.Before(minTS) {
			minTS = r.Timestamp
		}
		if i == 0 || r.Timestamp.After(maxTS) {
			maxTS = r.Timestamp
		}
	}

	return &Overview{
		TotalPrompts: len(records),
		UniqueUsers:  len(users),
		DateRange: DateRange{
			Start: output.Time(minTS),
			End:   output.Time(maxTS),
		},
		TotalTokens: totalTokens,
		AvgQuality:  output.Float(mean(qualitySum, len(records)), 2),
		TotalCost:   output.Float(costSum, 2),
	}
}
