// Package domain contains application services orchestrating domain logic by issue.
package domain

import (
	"context"

	"github.com/iamcoreyg/dexo-docs/internal/entities"
)

// ListIssues returns issues filtered by exact status; entities.StatusAll
// returns every row.
func (u *Usecase) ListIssues(ctx context.Context, status string) ([]entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListIssues(ctx, status)
}

// CreateIssue logs an issue; it always starts out open.
func (u *Usecase) CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	res, err := u.repo.CreateIssue(ctx, issue)
	if err != nil {
		return nil, err
	}
	u.log.Infow("issue created", "issue_id", res.ID)
	return res, nil
}

// UpdateIssueStatus changes status and resolution notes; resolved_at is
// derived from the new status. Returns nil when the id does not exist.
func (u *Usecase) UpdateIssueStatus(ctx context.Context, id int64, upd entities.IssueStatusUpdate) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.UpdateIssueStatus(ctx, id, upd)
}
