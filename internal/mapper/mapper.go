// Package mapper converts between transport DTOs and domain models.
package mapper

import (
	"github.com/iamcoreyg/dexo-docs/internal/api"
	"github.com/iamcoreyg/dexo-docs/internal/entities"
)

// FromCreateReviewRequest builds an entities.Review from the POST body.
// ReviewedAt stays zero; the database assigns it.
func FromCreateReviewRequest(src api.CreateReviewRequest) entities.Review {
	return entities.Review{
		DocSlug:  src.DocSlug,
		DocTitle: src.DocTitle,
		Notes:    src.Notes,
	}
}

// FromCreateIssueRequest builds an entities.Issue from the POST body.
// Status and CreatedAt stay zero; the insert forces them server-side.
func FromCreateIssueRequest(src api.CreateIssueRequest) entities.Issue {
	return entities.Issue{
		DocSlug:      src.DocSlug,
		DocTitle:     src.DocTitle,
		IssueType:    src.IssueType,
		Description:  src.Description,
		SuggestedFix: src.SuggestedFix,
	}
}

// FromUpdateIssueRequest builds the column set of an issue PATCH.
func FromUpdateIssueRequest(src api.UpdateIssueRequest) entities.IssueStatusUpdate {
	return entities.IssueStatusUpdate{
		Status:          src.Status,
		ResolutionNotes: src.ResolutionNotes,
	}
}

// FromCreateGapRequest builds an entities.Gap from the POST body.
func FromCreateGapRequest(src api.CreateGapRequest) entities.Gap {
	return entities.Gap{
		TicketID:      src.TicketID,
		TicketSubject: src.TicketSubject,
		Description:   src.Description,
		SuggestedDoc:  src.SuggestedDoc,
	}
}

// FromUpdateGapRequest builds the column set of a gap PATCH.
func FromUpdateGapRequest(src api.UpdateGapRequest) entities.GapUpdate {
	return entities.GapUpdate{
		Status:         src.Status,
		DocCreatedSlug: src.DocCreatedSlug,
	}
}
