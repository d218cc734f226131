// Package alert implements the emergency alert store using PostgreSQL.
package alert

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

var alertColumns = []string{
	"a.id", "a.phone", "a.latitude", "a.longitude", "a.created_at",
	"a.handled", "a.handled_at", "a.handled_by", "a.notes",
}

// Repo provides emergency alert persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new alert repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a new unhandled alert.
func (r *Repo) Create(ctx context.Context, a domain.EmergencyAlert) (*domain.EmergencyAlert, error) {
	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := postgres.Builder.
		Insert("emergency_alerts").
		Columns("id", "phone", "latitude", "longitude", "notes").
		Values(id, a.Phone, a.Point.Lat, a.Point.Lon, a.Notes).
		Suffix("RETURNING id, phone, latitude, longitude, created_at, handled, handled_at, handled_by, notes")

	return r.queryOne(ctx, id, query)
}

// GetByID returns an alert by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EmergencyAlert, error) {
	query := postgres.Builder.
		Select(alertColumns...).
		From("emergency_alerts a").
		Where(sq.Eq{"a.id": id})

	return r.queryOne(ctx, id, query)
}

// ListUnhandled returns unhandled alerts inside scope, newest first. An
// empty scope returns an empty slice without querying.
func (r *Repo) ListUnhandled(ctx context.Context, scope domain.AlertScope) ([]domain.EmergencyAlert, error) {
	if scope.IsEmpty() {
		return []domain.EmergencyAlert{}, nil
	}

	sqlStr, args, err := postgres.Builder.
		Select(alertColumns...).
		From("emergency_alerts a").
		Where(sq.Eq{"a.handled": false}).
		Where(postgres.BoxPredicate("a", *scope.Area)).
		OrderBy("a.created_at DESC", "a.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alert list: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "emergency_alert", uuid.Nil)
	}
	defer rows.Close()

	out := make([]domain.EmergencyAlert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "emergency_alert", uuid.Nil)
	}
	return out, nil
}

// MarkHandled flags the alert as handled at the given time. Handling an
// already handled alert overwrites handled_at and handled_by. Empty notes
// keep the current notes.
func (r *Repo) MarkHandled(ctx context.Context, id, handledBy uuid.UUID, notes string, at time.Time) (*domain.EmergencyAlert, error) {
	query := postgres.Builder.
		Update("emergency_alerts").
		Set("handled", true).
		Set("handled_at", at).
		Set("handled_by", handledBy).
		Set("notes", sq.Expr("COALESCE(NULLIF(?, ''), notes)", notes)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, phone, latitude, longitude, created_at, handled, handled_at, handled_by, notes")

	return r.queryOne(ctx, id, query)
}

func (r *Repo) queryOne(ctx context.Context, id uuid.UUID, query sq.Sqlizer) (*domain.EmergencyAlert, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alert query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	a, err := scanAlert(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "emergency_alert", id)
	}
	return a, nil
}

func scanAlert(row pgx.Row) (*domain.EmergencyAlert, error) {
	var a domain.EmergencyAlert
	if err := row.Scan(
		&a.ID, &a.Phone, &a.Point.Lat, &a.Point.Lon, &a.CreatedAt,
		&a.Handled, &a.HandledAt, &a.HandledBy, &a.Notes,
	); err != nil {
		return nil, fmt.Errorf("scan emergency alert: %w", err)
	}
	return &a, nil
}
