package calculations

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/promptlens/promptlens/output"
)

// DefaultUserLimit is the number of user rollups returned when the caller
// does not specify a limit.
const DefaultUserLimit = 10

// UserStats is one per-user rollup.
type UserStats struct {
	UserID          string           `json:"user_id"`
	UserName        string           `json:"user_name"`
	PromptCount     int              `json:"prompt_count"`
	TotalTokens     int              `json:"total_tokens"`
	AvgTokens       output.Number    `json:"avg_tokens"`
	AvgQuality      output.Number    `json:"avg_quality"`
	AvgPromptLength output.Number    `json:"avg_prompt_length"`
	FirstPrompt     output.Timestamp `json:"first_prompt"`
	LastPrompt      output.Timestamp `json:"last_prompt"`
	TotalCost       output.Number    `json:"total_cost"`
}

// UserAggregation is the per-user view. TotalUsers counts every distinct
// user regardless of the limit applied to Users.
type UserAggregation struct {
	Users      []UserStats `json:"users"`
	TotalUsers int         `json:"total_users"`
}

type userAccumulator struct {
	userID          string
	displayName     string
	count           int
	tokenSum        int
	qualitySum      float64
	promptLengthSum int
	costSum         float64
	firstTS         time.Time
	lastTS          time.Time
}

// Users computes per-user rollups sorted by prompt count descending,
// truncated to limit. A limit of zero yields an empty list while TotalUsers
// stays accurate. Returns nil when no data is loaded.
func (e *Engine) Users(limit int) *UserAggregation {
	records := e.ds.Records()
	if len(records) == 0 {
		return nil
	}

	groups := make(map[string]*userAccumulator)
	var order []string

	for _, r := range records {
		acc, ok := groups[r.UserID]
		if !ok {
			acc = &userAccumulator{userID: r.UserID, firstTS: r.Timestamp, lastTS: r.Timestamp}
			groups[r.UserID] = acc
			order = append(order, r.UserID)
		}

		acc.count++
		acc.tokenSum += r.TokensUsed
		acc.qualitySum += r.ResponseQuality
		acc.promptLengthSum += r.PromptLength
		if r.CostUSD != nil {
			acc.costSum += *r.CostUSD
		}
		if acc.displayName == "" && r.User != "" {
			acc.displayName = r.User
		}
		if r.Timestamp.Before(acc.firstTS) {
			acc.firstTS = r.Timestamp
		}
		if r.Timestamp.After(acc.lastTS) {
			acc.lastTS = r.Timestamp
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := groups[order[i]], groups[order[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return a.userID < b.userID
	})

	if limit < 0 {
		limit = DefaultUserLimit
	}
	if limit > len(order) {
		limit = len(order)
	}

	users := make([]UserStats, 0, limit)
	for _, id := range order[:limit] {
		acc := groups[id]
		users = append(users, UserStats{
			UserID:          acc.userID,
			UserName:        resolveDisplayName(acc.userID, acc.displayName),
			PromptCount:     acc.count,
			TotalTokens:     acc.tokenSum,
			AvgTokens:       output.Float(mean(float64(acc.tokenSum), acc.count), 1),
			AvgQuality:      output.Float(mean(acc.qualitySum, acc.count), 2),
			AvgPromptLength: output.Float(mean(float64(acc.promptLengthSum), acc.count), 1),
			FirstPrompt:     output.Time(acc.firstTS),
			LastPrompt:      output.Time(acc.lastTS),
			TotalCost:       output.Float(acc.costSum, 3),
		})
	}

	return &UserAggregation{
		Users:      users,
		TotalUsers: len(groups),
	}
}

// resolveDisplayName picks the user's display name, synthesizing a label
// when the first observed value is missing or a serialized non-value.
func resolveDisplayName(userID, name string) string {
	switch strings.ToLower(name) {
	case "", "nan", "none":
		return fmt.Sprintf("User %s", userID)
	}
	return name
}
