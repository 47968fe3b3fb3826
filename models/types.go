package models

import (
	"time"
	"unicode/utf8"
)

// RawRecord is one prompt-usage record as it appears on a JSONL line.
// Optional columns are pointers so absence is distinguishable from zero.
type RawRecord struct {
	Prompt          string   `json:"prompt"`
	User            string   `json:"user,omitempty"`
	UserID          string   `json:"user_id"`
	Timestamp       string   `json:"timestamp"`
	Model           string   `json:"model"`
	Category        string   `json:"category"`
	TokensUsed      int      `json:"tokens_used"`
	ResponseQuality float64  `json:"response_quality"`
	SessionID       string   `json:"session_id,omitempty"`
	PromptLength    *int     `json:"prompt_length,omitempty"`
	ResponseTimeMS  *float64 `json:"response_time_ms,omitempty"`
	CostUSD         *float64 `json:"cost_usd,omitempty"`
}

// PromptRecord is a fully-derived record in the loaded dataset. Derived
// columns are computed once at load and never mutated afterwards.
type PromptRecord struct {
	Prompt          string
	PromptLength    int
	User            string
	UserID          string
	Timestamp       time.Time
	Date            string
	Hour            int
	DayOfWeek       string
	Model           string
	Category        string
	TokensUsed      int
	ResponseQuality float64
	SessionID       string
	ResponseTimeMS  *float64
	CostUSD         *float64
}

// DateLayout is the derived calendar-date format.
const DateLayout = "2006-01-02"

// Derive builds a PromptRecord from a raw record and its parsed timestamp.
// Timestamps are normalized to UTC so hour and date bucketing is
// deterministic regardless of the source offset. Prompt length counts
// Unicode code points, not bytes.
func (r RawRecord) Derive(ts time.Time) PromptRecord {
	ts = ts.UTC()
	return PromptRecord{
		Prompt:          r.Prompt,
		PromptLength:    utf8.RuneCountInString(r.Prompt),
		User:            r.User,
		UserID:          r.UserID,
		Timestamp:       ts,
		Date:            ts.Format(DateLayout),
		Hour:            ts.Hour(),
		DayOfWeek:       ts.Weekday().String(),
		Model:           r.Model,
		Category:        r.Category,
		TokensUsed:      r.TokensUsed,
		ResponseQuality: r.ResponseQuality,
		SessionID:       r.SessionID,
		ResponseTimeMS:  r.ResponseTimeMS,
		CostUSD:         r.CostUSD,
	}
}

// ParseTimestamp parses a record timestamp. Accepts RFC 3339 with or without
// fractional seconds, and the bare second-precision form without a zone
// (interpreted as UTC).
func ParseTimestamp(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse("2006-01-02T15:04:05.999999999", value); err == nil {
		return ts.UTC(), nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
