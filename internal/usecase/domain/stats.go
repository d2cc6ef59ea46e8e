// Package domain contains application services orchestrating domain logic by statistics.
package domain

import (
	"context"

	"github.com/iamcoreyg/dexo-docs/internal/entities"
)

// Stats returns counts grouped by status across reviews, issues and gaps.
func (u *Usecase) Stats(ctx context.Context) (entities.Stats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Stats(ctx)
}
