// Package crimetype implements the crime type catalog using PostgreSQL.
package crimetype

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// Repo provides crime type persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new crime type repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a crime type by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CrimeType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := scanCrimeType(q.QueryRow(ctx,
		`SELECT id, name, description FROM crime_types WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "crime_type", id)
	}
	return ct, nil
}

// List returns all crime types ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.CrimeType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT id, name, description FROM crime_types ORDER BY name`)
	if err != nil {
		return nil, postgres.MapError(err, "crime_type", uuid.Nil)
	}
	defer rows.Close()

	out := make([]domain.CrimeType, 0)
	for rows.Next() {
		ct, err := scanCrimeType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ct)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "crime_type", uuid.Nil)
	}
	return out, nil
}

// Upsert creates a crime type or refreshes the description of the one with
// the same name.
func (r *Repo) Upsert(ctx context.Context, name, description string) (*domain.CrimeType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := scanCrimeType(q.QueryRow(ctx,
		`INSERT INTO crime_types (name, description) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
		 RETURNING id, name, description`,
		name, description,
	))
	if err != nil {
		return nil, postgres.MapError(err, "crime_type", uuid.Nil)
	}
	return ct, nil
}

func scanCrimeType(row pgx.Row) (*domain.CrimeType, error) {
	var ct domain.CrimeType
	if err := row.Scan(&ct.ID, &ct.Name, &ct.Description); err != nil {
		return nil, fmt.Errorf("scan crime type: %w", err)
	}
	return &ct, nil
}
