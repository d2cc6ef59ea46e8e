// Package entities contains core business entities.
package entities

import "time"

const (
	// StatusOpen is the status every new issue and gap starts in.
	StatusOpen = "open"
	// StatusResolved marks an issue as fixed.
	StatusResolved = "resolved"
	// StatusDismissed marks an issue as closed without a fix.
	StatusDismissed = "dismissed"

	// StatusAll is the list filter value that disables status filtering.
	StatusAll = "all"
)

// Issue is a problem found in an existing documentation page.
// Status is free text; only "resolved" and "dismissed" carry special
// handling (they derive ResolvedAt).
type Issue struct {
	ID              int64      `json:"id"`
	DocSlug         *string    `json:"doc_slug"`
	DocTitle        *string    `json:"doc_title"`
	IssueType       *string    `json:"issue_type"`
	Description     *string    `json:"description"`
	SuggestedFix    *string    `json:"suggested_fix"`
	Status          string     `json:"status"`
	ResolutionNotes *string    `json:"resolution_notes"`
	CreatedAt       time.Time  `json:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
}

// IssueStatusUpdate carries the mutable columns of an issue PATCH.
type IssueStatusUpdate struct {
	Status          *string
	ResolutionNotes *string
}
