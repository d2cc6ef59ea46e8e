package usecase

import (
	"context"

	"github.com/iamcoreyg/dexo-docs/internal/entities"
)

// ReviewUsecaseInterface abstracts review-record operations for the delivery layer.
type ReviewUsecaseInterface interface {
	ListReviews(ctx context.Context) ([]entities.Review, error)
	CreateReview(ctx context.Context, review entities.Review) (*entities.Review, error)
	LatestReview(ctx context.Context, slug string) (*entities.Review, error)
}

// IssueUsecaseInterface abstracts issue-record operations.
type IssueUsecaseInterface interface {
	ListIssues(ctx context.Context, status string) ([]entities.Issue, error)
	CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error)
	UpdateIssueStatus(ctx context.Context, id int64, upd entities.IssueStatusUpdate) (*entities.Issue, error)
}

// GapUsecaseInterface abstracts gap-record operations.
type GapUsecaseInterface interface {
	ListGaps(ctx context.Context, status string) ([]entities.Gap, error)
	CreateGap(ctx context.Context, gap entities.Gap) (*entities.Gap, error)
	UpdateGap(ctx context.Context, id int64, upd entities.GapUpdate) (*entities.Gap, error)
}

// StatsUsecaseInterface abstracts statistics operations.
type StatsUsecaseInterface interface {
	Stats(ctx context.Context) (entities.Stats, error)
}
