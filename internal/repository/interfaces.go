// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/iamcoreyg/dexo-docs/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ReviewInterface exposes review-record operations.
type ReviewInterface interface {
	ListReviews(ctx context.Context) ([]entities.Review, error)
	CreateReview(ctx context.Context, review entities.Review) (*entities.Review, error)
	// LatestReview returns the most recent review for a slug, or (nil, nil)
	// when no such review exists.
	LatestReview(ctx context.Context, slug string) (*entities.Review, error)
}

// IssueInterface exposes issue-record operations.
type IssueInterface interface {
	// ListIssues filters by exact status; entities.StatusAll disables the filter.
	ListIssues(ctx context.Context, status string) ([]entities.Issue, error)
	CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error)
	// UpdateIssueStatus sets status and resolution notes, deriving resolved_at
	// from the new status. Returns (nil, nil) when the id does not exist.
	UpdateIssueStatus(ctx context.Context, id int64, upd entities.IssueStatusUpdate) (*entities.Issue, error)
}

// GapInterface exposes gap-record operations.
type GapInterface interface {
	ListGaps(ctx context.Context, status string) ([]entities.Gap, error)
	CreateGap(ctx context.Context, gap entities.Gap) (*entities.Gap, error)
	// UpdateGap sets status and doc_created_slug. Returns (nil, nil) when the
	// id does not exist.
	UpdateGap(ctx context.Context, id int64, upd entities.GapUpdate) (*entities.Gap, error)
}

// StatsInterface exposes aggregated statistics operations.
type StatsInterface interface {
	Stats(ctx context.Context) (entities.Stats, error)
}
