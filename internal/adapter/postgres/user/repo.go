// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

const userColumns = `id, email, username, name, phone, badge_number, role, department_id, password_hash, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, strings.TrimSpace(email)))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// Duplicate email or username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanUser(q.QueryRow(ctx,
		`INSERT INTO users (id, email, username, name, phone, badge_number, role, department_id, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+userColumns,
		id, u.Email, u.Username, u.Name, u.Phone, u.BadgeNumber, string(u.Role), u.DepartmentID, u.PasswordHash,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return created, nil
}

// UpdateProfile changes the editable profile fields. Nil arguments keep the
// current value.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name, phone *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx,
		`UPDATE users
		 SET name = COALESCE($2, name), phone = COALESCE($3, phone), updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, name, phone,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdateRole sets role and department in one statement. A nil badge keeps
// the current badge number. The database rejects a department on a
// non-police role with domain.ErrValidation.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole, deptID *uuid.UUID, badge *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx,
		`UPDATE users
		 SET role = $2, department_id = $3, badge_number = COALESCE($4, badge_number), updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, string(role), deptID, badge,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.Name, &u.Phone, &u.BadgeNumber,
		&role, &u.DepartmentID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
