// Package statusupdate implements the append-only report status audit log
// using PostgreSQL.
package statusupdate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// Repo provides status update persistence backed by PostgreSQL.
// Rows are never updated or deleted through this type.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new status update repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends an audit record. Run it in the same transaction as the
// status change it describes.
func (r *Repo) Create(ctx context.Context, u domain.StatusUpdate) (*domain.StatusUpdate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	out := u
	out.ID = id
	err := q.QueryRow(ctx,
		`INSERT INTO status_updates (id, report_id, actor_id, old_status, new_status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		id, u.ReportID, u.ActorID, string(u.OldStatus), string(u.NewStatus), u.Notes,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "status_update", id)
	}
	return &out, nil
}

// ListByReport returns the history of a report, newest first, with the
// actor's display name when the actor still exists.
func (r *Repo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.StatusUpdate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT su.id, su.report_id, su.actor_id, u.name, su.old_status, su.new_status, su.notes, su.created_at
		 FROM status_updates su
		 LEFT JOIN users u ON u.id = su.actor_id
		 WHERE su.report_id = $1
		 ORDER BY su.created_at DESC, su.id DESC`,
		reportID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "status_update", reportID)
	}
	defer rows.Close()

	out := make([]domain.StatusUpdate, 0)
	for rows.Next() {
		su, err := scanStatusUpdate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *su)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "status_update", reportID)
	}
	return out, nil
}

func scanStatusUpdate(row pgx.Row) (*domain.StatusUpdate, error) {
	var (
		su           domain.StatusUpdate
		oldSt, newSt string
	)
	if err := row.Scan(
		&su.ID, &su.ReportID, &su.ActorID, &su.ActorName, &oldSt, &newSt, &su.Notes, &su.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan status update: %w", err)
	}
	su.OldStatus = domain.ReportStatus(oldSt)
	su.NewStatus = domain.ReportStatus(newSt)
	return &su, nil
}
