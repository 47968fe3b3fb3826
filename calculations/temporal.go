package calculations

import (
	"fmt"
	"sort"
	"time"

	"github.com/promptlens/promptlens/models"
	"github.com/promptlens/promptlens/output"
)

// Temporal analysis periods.
const (
	PeriodHourly = "hourly"
	PeriodDaily  = "daily"
	PeriodWeekly = "weekly"
)

// TemporalRow is one time bucket. Period is the human label and PeriodValue
// the sortable raw key (hour number, date string, or week-start instant).
// UniqueUsers is present for daily and weekly buckets only.
type TemporalRow struct {
	Period      string        `json:"period"`
	PeriodValue any           `json:"period_value"`
	PromptCount int           `json:"prompt_count"`
	TotalTokens int           `json:"total_tokens"`
	AvgQuality  output.Number `json:"avg_quality"`
	UniqueUsers int           `json:"unique_users,omitempty"`
}

// TemporalAnalysis is the temporal view for one period type.
type TemporalAnalysis struct {
	PeriodType string        `json:"period_type"`
	Data       []TemporalRow `json:"data"`
}

type bucketAccumulator struct {
	count      int
	tokenSum   int
	qualitySum float64
	users      map[string]bool
}

// Temporal buckets the dataset by the requested period. Results are sorted
// ascending by the raw period key, not the display label. Returns nil when
// no data is loaded, and an error for an unknown period.
func (e *Engine) Temporal(period string) (*TemporalAnalysis, error) {
	switch period {
	case PeriodHourly, PeriodDaily, PeriodWeekly:
	default:
		return nil, fmt.Errorf("unsupported period: %s", period)
	}

	records := e.ds.Records()
	if len(records) == 0 {
		return nil, nil
	}

	buckets := make(map[string]*bucketAccumulator)
	for _, r := range records {
		key := bucketKey(r, period)
		acc, ok := buckets[key]
		if !ok {
			acc = &bucketAccumulator{users: make(map[string]bool)}
			buckets[key] = acc
		}
		acc.count++
		acc.tokenSum += r.TokensUsed
		acc.qualitySum += r.ResponseQuality
		acc.users[r.UserID] = true
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]TemporalRow, 0, len(keys))
	for _, key := range keys {
		acc := buckets[key]
		row := TemporalRow{
			PromptCount: acc.count,
			TotalTokens: acc.tokenSum,
			AvgQuality:  output.Float(mean(acc.qualitySum, acc.count), 2),
		}

		switch period {
		case PeriodHourly:
			var hour int
			fmt.Sscanf(key, "%02d", &hour)
			row.Period = fmt.Sprintf("%02d:00", hour)
			row.PeriodValue = hour
		case PeriodDaily:
			row.Period = key
			row.PeriodValue = key
			row.UniqueUsers = len(acc.users)
		case PeriodWeekly:
			row.Period = fmt.Sprintf("Week of %s", key)
			row.PeriodValue = key + "T00:00:00"
			row.UniqueUsers = len(acc.users)
		}
		rows = append(rows, row)
	}

	return &TemporalAnalysis{
		PeriodType: period,
		Data:       rows,
	}, nil
}

// bucketKey returns the group key for a record under the given period. Keys
// are strings whose lexicographic order matches the period order: zero-padded
// hour, ISO date, or ISO-week-start date.
func bucketKey(r models.PromptRecord, period string) string {
	switch period {
	case PeriodHourly:
		return fmt.Sprintf("%02d", r.Hour)
	case PeriodDaily:
		return r.Date
	default:
		return weekStart(r.Timestamp).Format(models.DateLayout)
	}
}

// weekStart returns midnight UTC of the Monday beginning the record's ISO
// week.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	days := int(t.Weekday())
	if days == 0 { // Sunday
		days = 7
	}
	days-- // Monday = 0
	return time.Date(t.Year(), t.Month(), t.Day()-days, 0, 0, 0, 0, time.UTC)
}
