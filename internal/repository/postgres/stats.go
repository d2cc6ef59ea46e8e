package postgres

import (
	"context"
	"fmt"

	"github.com/iamcoreyg/dexo-docs/internal/entities"

	"golang.org/x/sync/errgroup"
)

const (
	issuesByStatusQuery = `SELECT status, COUNT(*) FROM issues GROUP BY status`
	gapsByStatusQuery   = `SELECT status, COUNT(*) FROM gaps GROUP BY status`
	reviewSummaryQuery  = `SELECT COUNT(*), MAX(reviewed_at) FROM reviews`
)

// Stats returns counts grouped by status across all three tables. The
// three reads are independent and run in parallel.
func (p *Postgres) Stats(ctx context.Context) (entities.Stats, error) {
	res := entities.NewStats()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := p.countByStatus(ctx, issuesByStatusQuery)
		if err != nil {
			return fmt.Errorf("issue stats: %w", err)
		}
		res.Issues = counts
		return nil
	})

	g.Go(func() error {
		counts, err := p.countByStatus(ctx, gapsByStatusQuery)
		if err != nil {
			return fmt.Errorf("gap stats: %w", err)
		}
		res.Gaps = counts
		return nil
	})

	g.Go(func() error {
		// MAX over an empty table is NULL, which leaves LastReview nil.
		if err := p.db.QueryRow(ctx, reviewSummaryQuery).
			Scan(&res.Reviews.Total, &res.Reviews.LastReview); err != nil {
			return fmt.Errorf("review stats: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		p.log.Errorw("failed to aggregate stats", "error", err)
		return entities.NewStats(), err
	}

	return res, nil
}

func (p *Postgres) countByStatus(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var cnt int64
		if err := rows.Scan(&status, &cnt); err != nil {
			return nil, err
		}
		counts[status] = cnt
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
