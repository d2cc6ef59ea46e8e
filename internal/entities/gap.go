// Package entities contains core business entities.
package entities

import "time"

// Gap is missing documentation discovered through a support ticket.
// DocCreatedSlug is a free-text hint at the page that was written to
// close the gap, not a validated link to a review.
type Gap struct {
	ID             int64     `json:"id"`
	TicketID       *string   `json:"ticket_id"`
	TicketSubject  *string   `json:"ticket_subject"`
	Description    *string   `json:"description"`
	SuggestedDoc   *string   `json:"suggested_doc"`
	Status         string    `json:"status"`
	DocCreatedSlug *string   `json:"doc_created_slug"`
	CreatedAt      time.Time `json:"created_at"`
}

// GapUpdate carries the mutable columns of a gap PATCH.
type GapUpdate struct {
	Status         *string
	DocCreatedSlug *string
}
