// Package domain contains application services orchestrating domain logic by review.
package domain

import (
	"context"

	"github.com/iamcoreyg/dexo-docs/internal/entities"
)

// ListReviews returns all reviews newest first.
func (u *Usecase) ListReviews(ctx context.Context) ([]entities.Review, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListReviews(ctx)
}

// CreateReview records a review. Field presence is not checked here; the
// database constraints are the only enforcement.
func (u *Usecase) CreateReview(ctx context.Context, review entities.Review) (*entities.Review, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	res, err := u.repo.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}
	u.log.Infow("review created", "review_id", res.ID)
	return res, nil
}

// LatestReview returns the most recent review for a slug, or nil when the
// slug has never been reviewed.
func (u *Usecase) LatestReview(ctx context.Context, slug string) (*entities.Review, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.LatestReview(ctx, slug)
}
