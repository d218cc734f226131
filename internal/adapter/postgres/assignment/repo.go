// Package assignment implements crime-to-team assignments using PostgreSQL.
package assignment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// Repo provides assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create records that a team was assigned to a report. Unknown report or
// team yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, a domain.CrimeAssignment) (*domain.CrimeAssignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	out := a
	out.ID = id
	err := q.QueryRow(ctx,
		`INSERT INTO crime_assignments (id, report_id, team_id, assigned_by, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING assigned_at`,
		id, a.ReportID, a.TeamID, a.AssignedBy, a.Notes,
	).Scan(&out.AssignedAt)
	if err != nil {
		return nil, postgres.MapError(err, "crime_assignment", id)
	}
	return &out, nil
}

// ListByReport returns the assignments of a report, newest first.
func (r *Repo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.CrimeAssignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT a.id, a.report_id, a.team_id, t.name, a.assigned_by, a.assigned_at, a.notes
		 FROM crime_assignments a
		 JOIN police_teams t ON t.id = a.team_id
		 WHERE a.report_id = $1
		 ORDER BY a.assigned_at DESC, a.id DESC`,
		reportID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "crime_assignment", reportID)
	}
	defer rows.Close()

	out := make([]domain.CrimeAssignment, 0)
	for rows.Next() {
		var a domain.CrimeAssignment
		if err := rows.Scan(&a.ID, &a.ReportID, &a.TeamID, &a.TeamName, &a.AssignedBy, &a.AssignedAt, &a.Notes); err != nil {
			return nil, fmt.Errorf("scan crime assignment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "crime_assignment", reportID)
	}
	return out, nil
}
