package models

import (
	"fmt"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Validate checks the structural invariants of a raw record. The serving
// load path does not call this; it is used by the validate command and the
// transformer, where rejecting a record is the point.
func (r RawRecord) Validate() error {
	if r.Prompt == "" {
		return ValidationError{Field: "prompt", Message: "prompt cannot be empty"}
	}

	if r.UserID == "" {
		return ValidationError{Field: "user_id", Message: "user id cannot be empty"}
	}

	if r.Timestamp == "" {
		return ValidationError{Field: "timestamp", Message: "timestamp cannot be empty"}
	}

	if _, err := ParseTimestamp(r.Timestamp); err != nil {
		return ValidationError{Field: "timestamp", Message: fmt.Sprintf("unparsable timestamp %q", r.Timestamp)}
	}

	if r.Model == "" {
		return ValidationError{Field: "model", Message: "model cannot be empty"}
	}

	if r.Category == "" {
		return ValidationError{Field: "category", Message: "category cannot be empty"}
	}

	if r.TokensUsed < 0 {
		return ValidationError{Field: "tokens_used", Message: "token count cannot be negative"}
	}

	if r.ResponseQuality < 0 || r.ResponseQuality > 5 {
		return ValidationError{Field: "response_quality", Message: "quality must be within [0, 5]"}
	}

	if r.ResponseTimeMS != nil && *r.ResponseTimeMS < 0 {
		return ValidationError{Field: "response_time_ms", Message: "response time cannot be negative"}
	}

	if r.CostUSD != nil && *r.CostUSD < 0 {
		return ValidationError{Field: "cost_usd", Message: "cost cannot be negative"}
	}

	return nil
}
