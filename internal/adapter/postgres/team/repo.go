// Package team implements the police team registry using PostgreSQL.
package team

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

const teamSelect = `
	SELECT t.id, t.name, t.department_id, d.name, t.created_at,
	       COALESCE(array_agg(m.user_id::text ORDER BY m.user_id) FILTER (WHERE m.user_id IS NOT NULL), '{}')
	FROM police_teams t
	JOIN police_departments d ON d.id = t.department_id
	LEFT JOIN police_team_members m ON m.team_id = t.id`

// Repo provides team persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new team repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a team with its member ids.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PoliceTeam, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTeam(q.QueryRow(ctx, teamSelect+` WHERE t.id = $1 GROUP BY t.id, d.name`, id))
	if err != nil {
		return nil, postgres.MapError(err, "police_team", id)
	}
	return t, nil
}

// ListByDepartment returns the teams owned by a department, ordered by name.
func (r *Repo) ListByDepartment(ctx context.Context, deptID uuid.UUID) ([]domain.PoliceTeam, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		teamSelect+` WHERE t.department_id = $1 GROUP BY t.id, d.name ORDER BY t.name`, deptID)
	if err != nil {
		return nil, postgres.MapError(err, "police_team", deptID)
	}
	defer rows.Close()

	out := make([]domain.PoliceTeam, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "police_team", deptID)
	}
	return out, nil
}

// Upsert creates the team named name in deptID, or returns the existing one.
func (r *Repo) Upsert(ctx context.Context, deptID uuid.UUID, name string) (*domain.PoliceTeam, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id uuid.UUID
	err := q.QueryRow(ctx,
		`INSERT INTO police_teams (department_id, name) VALUES ($1, $2)
		 ON CONFLICT (department_id, name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		deptID, name,
	).Scan(&id)
	if err != nil {
		return nil, postgres.MapError(err, "police_team", deptID)
	}
	return r.GetByID(ctx, id)
}

// AddMember adds userID to the team. Adding an existing member is a no-op.
func (r *Repo) AddMember(ctx context.Context, teamID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO police_team_members (team_id, user_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		teamID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "police_team", teamID)
	}
	return nil
}

func scanTeam(row pgx.Row) (*domain.PoliceTeam, error) {
	var (
		t       domain.PoliceTeam
		members []string
	)
	if err := row.Scan(&t.ID, &t.Name, &t.DepartmentID, &t.DepartmentName, &t.CreatedAt, &members); err != nil {
		return nil, fmt.Errorf("scan police team: %w", err)
	}

	t.MemberIDs = make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			return nil, fmt.Errorf("parse team member id: %w", err)
		}
		t.MemberIDs = append(t.MemberIDs, id)
	}
	return &t, nil
}
