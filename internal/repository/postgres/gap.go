package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/iamcoreyg/dexo-docs/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	gapColumns = `id, ticket_id, ticket_subject, description, suggested_doc, status, doc_created_slug, created_at`

	listGapsQuery    = `SELECT ` + gapColumns + ` FROM gaps WHERE status = $1 ORDER BY created_at DESC`
	listAllGapsQuery = `SELECT ` + gapColumns + ` FROM gaps ORDER BY created_at DESC`

	insertGapQuery = `INSERT INTO gaps(ticket_id, ticket_subject, description, suggested_doc)
VALUES ($1, $2, $3, $4)
RETURNING ` + gapColumns

	updateGapQuery = `UPDATE gaps
SET status = $2,
    doc_created_slug = $3
WHERE id = $1
RETURNING ` + gapColumns
)

// ListGaps returns gaps with the given status newest first.
// entities.StatusAll disables the filter; an unknown status matches nothing.
func (p *Postgres) ListGaps(ctx context.Context, status string) ([]entities.Gap, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status == entities.StatusAll {
		rows, err = p.db.Query(ctx, listAllGapsQuery)
	} else {
		rows, err = p.db.Query(ctx, listGapsQuery, status)
	}
	if err != nil {
		p.log.Errorw("failed to list gaps", "error", err, "status", status)
		return nil, fmt.Errorf("list gaps: %w", err)
	}
	defer rows.Close()

	gaps := make([]entities.Gap, 0)
	for rows.Next() {
		g, err := scanGap(rows)
		if err != nil {
			p.log.Errorw("failed to scan gap", "error", err)
			return nil, err
		}
		gaps = append(gaps, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gaps: %w", err)
	}

	return gaps, nil
}

// CreateGap inserts a gap; status and created_at come from the column
// defaults, so every gap starts out open regardless of client input.
func (p *Postgres) CreateGap(ctx context.Context, gap entities.Gap) (*entities.Gap, error) {
	row := p.db.QueryRow(ctx, insertGapQuery,
		gap.TicketID, gap.TicketSubject, gap.Description, gap.SuggestedDoc)
	g, err := scanGap(row)
	if err != nil {
		p.log.Errorw("failed to insert gap", "error", err)
		return nil, fmt.Errorf("insert gap: %w", err)
	}

	p.log.Infow("gap logged", "gap_id", g.ID)
	return &g, nil
}

// UpdateGap sets status and doc_created_slug. Gaps carry no derived
// timestamp. Returns nil when the id does not exist.
func (p *Postgres) UpdateGap(ctx context.Context, id int64, upd entities.GapUpdate) (*entities.Gap, error) {
	row := p.db.QueryRow(ctx, updateGapQuery, id, upd.Status, upd.DocCreatedSlug)
	g, err := scanGap(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.log.Errorw("failed to update gap", "error", err, "gap_id", id)
		return nil, fmt.Errorf("update gap: %w", err)
	}

	p.log.Infow("gap updated", "gap_id", id, "status", g.Status)
	return &g, nil
}

func scanGap(row pgx.Row) (entities.Gap, error) {
	var g entities.Gap
	err := row.Scan(&g.ID, &g.TicketID, &g.TicketSubject, &g.Description,
		&g.SuggestedDoc, &g.Status, &g.DocCreatedSlug, &g.CreatedAt)
	return g, err
}
