// Package api declares the transport DTOs of the HTTP surface.
package api

// CreateReviewRequest is the POST /api/reviews body.
type CreateReviewRequest struct {
	DocSlug  *string `json:"doc_slug"`
	DocTitle *string `json:"doc_title"`
	Notes    *string `json:"notes"`
}

// CreateIssueRequest is the POST /api/issues body. There is deliberately
// no Status field: a status supplied by the client is ignored and every
// issue starts out open.
type CreateIssueRequest struct {
	DocSlug      *string `json:"doc_slug"`
	DocTitle     *string `json:"doc_title"`
	IssueType    *string `json:"issue_type"`
	Description  *string `json:"description"`
	SuggestedFix *string `json:"suggested_fix"`
}

// UpdateIssueRequest is the PATCH /api/issues/:id body.
type UpdateIssueRequest struct {
	Status          *string `json:"status"`
	ResolutionNotes *string `json:"resolution_notes"`
}

// CreateGapRequest is the POST /api/gaps body. Like issues, gaps always
// start out open regardless of client input.
type CreateGapRequest struct {
	TicketID      *string `json:"ticket_id"`
	TicketSubject *string `json:"ticket_subject"`
	Description   *string `json:"description"`
	SuggestedDoc  *string `json:"suggested_doc"`
}

// UpdateGapRequest is the PATCH /api/gaps/:id body.
type UpdateGapRequest struct {
	Status         *string `json:"status"`
	DocCreatedSlug *string `json:"doc_created_slug"`
}

// ErrorResponse is the machine-readable error body of API routes.
type ErrorResponse struct {
	Error string `json:"error"`
}
