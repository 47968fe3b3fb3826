// Package dataset holds the in-memory prompt-record table. A Dataset is
// built once at startup from loader output and is read-only afterwards, so
// concurrent views need no locking.
package dataset

import (
	"github.com/promptlens/promptlens/logging"
	"github.com/promptlens/promptlens/models"
)

// Dataset is the loaded record collection plus column-presence flags for the
// optional cost_usd and response_time_ms columns.
type Dataset struct {
	records         []models.PromptRecord
	hasCost         bool
	hasResponseTime bool
}

// Build derives the queryable dataset from raw loader output. Timestamps are
// parsed here; a record with an unparsable timestamp is skipped with a
// warning so one bad record cannot take down the whole load. Derived columns
// are computed exactly once.
func Build(raw []models.RawRecord) *Dataset {
	ds := &Dataset{
		records: make([]models.PromptRecord, 0, len(raw)),
	}

	for i, r := range raw {
		ts, err := models.ParseTimestamp(r.Timestamp)
		if err != nil {
			logging.LogWarnf("record %d: skipping record with unparsable timestamp %q", i, r.Timestamp)
			continue
		}

		ds.records = append(ds.records, r.Derive(ts))
		if r.CostUSD != nil {
			ds.hasCost = true
		}
		if r.ResponseTimeMS != nil {
			ds.hasResponseTime = true
		}
	}

	return ds
}

// Len returns the record count. Safe on a nil dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Empty reports whether the dataset holds no records.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// Records returns the loaded records. Callers must not mutate the slice.
func (d *Dataset) Records() []models.PromptRecord {
	if d == nil {
		return nil
	}
	return d.records
}

// HasCost reports whether any record carries the cost_usd column.
func (d *Dataset) HasCost() bool {
	return d != nil && d.hasCost
}

// HasResponseTime reports whether any record carries the response_time_ms
// column.
func (d *Dataset) HasResponseTime() bool {
	return d != nil && d.hasResponseTime
}
