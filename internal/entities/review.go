// Package entities contains core business entities.
package entities

import "time"

// Review records that someone checked a document on a given date.
// Pointer fields mirror nullable columns; DocSlug is a pointer so an
// absent value reaches the database as NULL and fails its constraint there.
type Review struct {
	ID         int64     `json:"id"`
	DocSlug    *string   `json:"doc_slug"`
	DocTitle   *string   `json:"doc_title"`
	Notes      *string   `json:"notes"`
	ReviewedAt time.Time `json:"reviewed_at"`
}
