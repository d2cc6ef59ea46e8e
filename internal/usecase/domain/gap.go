// Package domain contains application services orchestrating domain logic by gap.
package domain

import (
	"context"

	"github.com/iamcoreyg/dexo-docs/internal/entities"
)

// ListGaps returns gaps filtered by exact status; entities.StatusAll
// returns every row.
func (u *Usecase) ListGaps(ctx context.Context, status string) ([]entities.Gap, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListGaps(ctx, status)
}

// CreateGap logs a documentation gap; it always starts out open.
func (u *Usecase) CreateGap(ctx context.Context, gap entities.Gap) (*entities.Gap, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	res, err := u.repo.CreateGap(ctx, gap)
	if err != nil {
		return nil, err
	}
	u.log.Infow("gap created", "gap_id", res.ID)
	return res, nil
}

// UpdateGap changes status and the created-doc hint. Returns nil when the
// id does not exist.
func (u *Usecase) UpdateGap(ctx context.Context, id int64, upd entities.GapUpdate) (*entities.Gap, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.UpdateGap(ctx, id, upd)
}
