package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/iamcoreyg/dexo-docs/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	issueColumns = `id, doc_slug, doc_title, issue_type, description, suggested_fix, status, resolution_notes, created_at, resolved_at`

	listIssuesQuery    = `SELECT ` + issueColumns + ` FROM issues WHERE status = $1 ORDER BY created_at DESC`
	listAllIssuesQuery = `SELECT ` + issueColumns + ` FROM issues ORDER BY created_at DESC`

	insertIssueQuery = `INSERT INTO issues(doc_slug, doc_title, issue_type, description, suggested_fix)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + issueColumns

	// resolved_at is recomputed on every update: entering a terminal status
	// stamps it, leaving one clears it, and re-entering one does not keep
	// the earlier timestamp.
	updateIssueQuery = `UPDATE issues
SET status = $2,
    resolution_notes = $3,
    resolved_at = CASE WHEN $2 IN ('resolved', 'dismissed') THEN NOW() ELSE NULL END
WHERE id = $1
RETURNING ` + issueColumns
)

// ListIssues returns issues with the given status newest first.
// entities.StatusAll disables the filter; an unknown status matches nothing.
func (p *Postgres) ListIssues(ctx context.Context, status string) ([]entities.Issue, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status == entities.StatusAll {
		rows, err = p.db.Query(ctx, listAllIssuesQuery)
	} else {
		rows, err = p.db.Query(ctx, listIssuesQuery, status)
	}
	if err != nil {
		p.log.Errorw("failed to list issues", "error", err, "status", status)
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	issues := make([]entities.Issue, 0)
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			p.log.Errorw("failed to scan issue", "error", err)
			return nil, err
		}
		issues = append(issues, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate issues: %w", err)
	}

	return issues, nil
}

// CreateIssue inserts an issue; status and created_at come from the column
// defaults, so every issue starts out open regardless of client input.
func (p *Postgres) CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error) {
	row := p.db.QueryRow(ctx, insertIssueQuery,
		issue.DocSlug, issue.DocTitle, issue.IssueType, issue.Description, issue.SuggestedFix)
	i, err := scanIssue(row)
	if err != nil {
		p.log.Errorw("failed to insert issue", "error", err)
		return nil, fmt.Errorf("insert issue: %w", err)
	}

	p.log.Infow("issue logged", "issue_id", i.ID)
	return &i, nil
}

// UpdateIssueStatus sets status and resolution notes, deriving resolved_at
// from the new status. Returns nil when the id does not exist.
func (p *Postgres) UpdateIssueStatus(ctx context.Context, id int64, upd entities.IssueStatusUpdate) (*entities.Issue, error) {
	row := p.db.QueryRow(ctx, updateIssueQuery, id, upd.Status, upd.ResolutionNotes)
	i, err := scanIssue(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.log.Errorw("failed to update issue", "error", err, "issue_id", id)
		return nil, fmt.Errorf("update issue: %w", err)
	}

	p.log.Infow("issue updated", "issue_id", id, "status", i.Status)
	return &i, nil
}

func scanIssue(row pgx.Row) (entities.Issue, error) {
	var i entities.Issue
	err := row.Scan(&i.ID, &i.DocSlug, &i.DocTitle, &i.IssueType, &i.Description,
		&i.SuggestedFix, &i.Status, &i.ResolutionNotes, &i.CreatedAt, &i.ResolvedAt)
	return i, err
}
