// Package entities contains core business entities.
package entities

import "time"

// Stats aggregates record counts grouped by status across all three tables.
// A status with zero rows is an absent key, not a zero-valued entry.
type Stats struct {
	Issues  map[string]int64 `json:"issues"`
	Gaps    map[string]int64 `json:"gaps"`
	Reviews ReviewSummary    `json:"reviews"`
}

// ReviewSummary is the review-table slice of the stats payload.
// LastReview is nil when the table is empty.
type ReviewSummary struct {
	Total      int64      `json:"total"`
	LastReview *time.Time `json:"last_review"`
}

// NewStats returns a Stats with initialized maps so an empty database
// serializes as {} rather than null.
func NewStats() Stats {
	return Stats{
		Issues: make(map[string]int64),
		Gaps:   make(map[string]int64),
	}
}
