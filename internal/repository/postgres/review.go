package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/iamcoreyg/dexo-docs/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listReviewsQuery = `SELECT id, doc_slug, doc_title, notes, reviewed_at
FROM reviews
ORDER BY reviewed_at DESC`
	insertReviewQuery = `INSERT INTO reviews(doc_slug, doc_title, notes)
VALUES ($1, $2, $3)
RETURNING id, doc_slug, doc_title, notes, reviewed_at`
	latestReviewQuery = `SELECT id, doc_slug, doc_title, notes, reviewed_at
FROM reviews
WHERE doc_slug = $1
ORDER BY reviewed_at DESC
LIMIT 1`
)

// ListReviews returns all reviews newest first.
func (p *Postgres) ListReviews(ctx context.Context) ([]entities.Review, error) {
	rows, err := p.db.Query(ctx, listReviewsQuery)
	if err != nil {
		p.log.Errorw("failed to list reviews", "error", err)
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]entities.Review, 0)
	for rows.Next() {
		var r entities.Review
		if err := rows.Scan(&r.ID, &r.DocSlug, &r.DocTitle, &r.Notes, &r.ReviewedAt); err != nil {
			p.log.Errorw("failed to scan review", "error", err)
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}

// CreateReview inserts a review; the database assigns id and reviewed_at.
// A nil DocSlug is passed through and rejected by the NOT NULL constraint.
func (p *Postgres) CreateReview(ctx context.Context, review entities.Review) (*entities.Review, error) {
	var r entities.Review
	err := p.db.QueryRow(ctx, insertReviewQuery, review.DocSlug, review.DocTitle, review.Notes).
		Scan(&r.ID, &r.DocSlug, &r.DocTitle, &r.Notes, &r.ReviewedAt)
	if err != nil {
		p.log.Errorw("failed to insert review", "error", err)
		return nil, fmt.Errorf("insert review: %w", err)
	}

	p.log.Infow("review recorded", "review_id", r.ID)
	return &r, nil
}

// LatestReview returns the most recent review for slug, or nil when the
// slug has never been reviewed.
func (p *Postgres) LatestReview(ctx context.Context, slug string) (*entities.Review, error) {
	var r entities.Review
	err := p.db.QueryRow(ctx, latestReviewQuery, slug).
		Scan(&r.ID, &r.DocSlug, &r.DocTitle, &r.Notes, &r.ReviewedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.log.Errorw("failed to get latest review", "error", err, "slug", slug)
		return nil, fmt.Errorf("latest review: %w", err)
	}

	return &r, nil
}
