// Package department implements the police department registry using PostgreSQL.
package department

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

const departmentColumns = `id, name, address, area, latitude, longitude, phone, email`

// Repo provides department persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new department repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a department by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PoliceDepartment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDepartment(q.QueryRow(ctx,
		`SELECT `+departmentColumns+` FROM police_departments WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "police_department", id)
	}
	return d, nil
}

// GetByName returns a department by its unique name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.PoliceDepartment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDepartment(q.QueryRow(ctx,
		`SELECT `+departmentColumns+` FROM police_departments WHERE name = $1`, name))
	if err != nil {
		return nil, postgres.MapError(err, "police_department", uuid.Nil)
	}
	return d, nil
}

// List returns all departments ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.PoliceDepartment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+departmentColumns+` FROM police_departments ORDER BY name`)
	if err != nil {
		return nil, postgres.MapError(err, "police_department", uuid.Nil)
	}
	defer rows.Close()

	out := make([]domain.PoliceDepartment, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "police_department", uuid.Nil)
	}
	return out, nil
}

// Upsert creates the department or updates the existing one with the same
// name. Used by operator seeding, never by the API.
func (r *Repo) Upsert(ctx context.Context, d domain.PoliceDepartment) (*domain.PoliceDepartment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	got, err := scanDepartment(q.QueryRow(ctx,
		`INSERT INTO police_departments (id, name, address, area, latitude, longitude, phone, email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (name) DO UPDATE
		 SET address = EXCLUDED.address, area = EXCLUDED.area,
		     latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude,
		     phone = EXCLUDED.phone, email = EXCLUDED.email
		 RETURNING `+departmentColumns,
		id, d.Name, d.Address, d.Area, d.Location.Lat, d.Location.Lon, d.Phone, d.Email,
	))
	if err != nil {
		return nil, postgres.MapError(err, "police_department", id)
	}
	return got, nil
}

func scanDepartment(row pgx.Row) (*domain.PoliceDepartment, error) {
	var d domain.PoliceDepartment
	if err := row.Scan(
		&d.ID, &d.Name, &d.Address, &d.Area, &d.Location.Lat, &d.Location.Lon, &d.Phone, &d.Email,
	); err != nil {
		return nil, fmt.Errorf("scan department: %w", err)
	}
	return &d, nil
}
