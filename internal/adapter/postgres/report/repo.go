// Package report implements the crime report store using PostgreSQL.
package report

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

var reportColumns = []string{
	"r.id", "r.reporter_id", "r.crime_type_id", "ct.name", "r.title", "r.details", "r.location",
	"r.latitude", "r.longitude", "r.image_ref", "r.status",
	"r.contact_name", "r.contact_email", "r.contact_phone", "r.reported_at", "r.updated_at",
}

const teamMemberPredicate = `EXISTS (
	SELECT 1 FROM crime_assignments ca
	JOIN police_team_members m ON m.team_id = ca.team_id
	WHERE ca.report_id = r.id AND m.user_id = ?)`

var orderings = map[domain.ReportOrdering]string{
	domain.OrderReportedAtAsc:  "r.reported_at ASC, r.id ASC",
	domain.OrderReportedAtDesc: "r.reported_at DESC, r.id DESC",
	domain.OrderStatusAsc:      "r.status ASC, r.reported_at DESC",
	domain.OrderStatusDesc:     "r.status DESC, r.reported_at DESC",
}

// Repo provides crime report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a report and returns it with the crime type name resolved.
// An unknown crime type or reporter yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, rep *domain.CrimeReport) (*domain.CrimeReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := rep.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := rep.Status
	if status == "" {
		status = domain.ReportStatusPending
	}

	_, err := q.Exec(ctx,
		`INSERT INTO crime_reports (id, reporter_id, crime_type_id, title, details, location,
		                            latitude, longitude, image_ref, status,
		                            contact_name, contact_email, contact_phone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		id, rep.ReporterID, rep.CrimeTypeID, rep.Title, rep.Details, rep.Location,
		rep.Point.Lat, rep.Point.Lon, rep.ImageRef, string(status),
		rep.Contact.Name, rep.Contact.Email, rep.Contact.Phone,
	)
	if err != nil {
		return nil, postgres.MapError(err, "crime_report", id)
	}

	return r.GetByID(ctx, id)
}

// GetByID returns a report by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CrimeReport, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns a report and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.CrimeReport, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.CrimeReport, error) {
	query := baseSelect().Where(sq.Eq{"r.id": id})
	if lock {
		query = query.Suffix("FOR UPDATE OF r")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build report query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rep, err := scanReport(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "crime_report", id)
	}
	return rep, nil
}

// List returns the reports matching scope and filter. An empty scope
// matches nothing and returns an empty slice without querying.
func (r *Repo) List(ctx context.Context, scope domain.ReportScope, filter domain.ReportFilter) ([]domain.CrimeReport, error) {
	if scope.IsEmpty() {
		return []domain.CrimeReport{}, nil
	}

	order, ok := orderings[filter.Ordering]
	if !ok {
		order = orderings[domain.OrderReportedAtDesc]
	}

	query := baseSelect().Where(scopePredicate(scope)).OrderBy(order)

	if filter.Status != nil {
		query = query.Where(sq.Eq{"r.status": string(*filter.Status)})
	}
	if filter.CrimeTypeID != nil {
		query = query.Where(sq.Eq{"r.crime_type_id": *filter.CrimeTypeID})
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		pattern := "%" + escapeLike(strings.TrimSpace(*filter.Search)) + "%"
		query = query.Where(sq.Or{
			sq.ILike{"r.title": pattern},
			sq.ILike{"r.details": pattern},
			sq.ILike{"r.contact_name": pattern},
		})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build report list: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "crime_report", uuid.Nil)
	}
	defer rows.Close()

	out := make([]domain.CrimeReport, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "crime_report", uuid.Nil)
	}
	return out, nil
}

// Update applies the non-nil fields of params. Status is not touched here.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ReportUpdateParams) error {
	if params.IsEmpty() {
		return nil
	}

	query := postgres.Builder.Update("crime_reports").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if params.Title != nil {
		query = query.Set("title", *params.Title)
	}
	if params.Details != nil {
		query = query.Set("details", *params.Details)
	}
	if params.Location != nil {
		query = query.Set("location", *params.Location)
	}
	if params.Point != nil {
		query = query.Set("latitude", params.Point.Lat).Set("longitude", params.Point.Lon)
	}
	switch {
	case params.ClearCrimeType:
		query = query.Set("crime_type_id", nil)
	case params.CrimeTypeID != nil:
		query = query.Set("crime_type_id", *params.CrimeTypeID)
	}
	switch {
	case params.ClearImage:
		query = query.Set("image_ref", nil)
	case params.ImageRef != nil:
		query = query.Set("image_ref", *params.ImageRef)
	}

	return r.execOne(ctx, id, query)
}

// SetStatus changes the status column. Callers pair it with an audit record
// in the same transaction.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	query := postgres.Builder.Update("crime_reports").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	return r.execOne(ctx, id, query)
}

func (r *Repo) execOne(ctx context.Context, id uuid.UUID, query sq.UpdateBuilder) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build report update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "crime_report", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "crime_report", id)
	}
	return nil
}

// Stats aggregates the reports matching scope by status, crime type name and
// submission day (UTC). Reports without a crime type are left out of the
// crime type counts. An empty scope yields empty maps.
func (r *Repo) Stats(ctx context.Context, scope domain.ReportScope) (domain.ReportStats, error) {
	stats := domain.NewReportStats()
	if scope.IsEmpty() {
		return stats, nil
	}

	pred := scopePredicate(scope)

	groupings := []struct {
		key    string
		join   string
		target map[string]int
	}{
		{key: "r.status", target: stats.StatusCounts},
		{key: "ct.name", join: "crime_types ct ON ct.id = r.crime_type_id", target: stats.CrimeTypeCounts},
		{key: "to_char(r.reported_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')", target: stats.Timeline},
	}

	for _, g := range groupings {
		query := postgres.Builder.
			Select(g.key, "count(*)").
			From("crime_reports r").
			Where(pred).
			GroupBy(g.key)
		if g.join != "" {
			query = query.Join(g.join)
		}

		if err := r.collectCounts(ctx, query, g.target); err != nil {
			return domain.ReportStats{}, err
		}
	}

	return stats, nil
}

func (r *Repo) collectCounts(ctx context.Context, query sq.SelectBuilder, into map[string]int) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build stats query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "crime_report", uuid.Nil)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("scan stats row: %w", err)
		}
		into[key] = count
	}
	return rows.Err()
}

func baseSelect() sq.SelectBuilder {
	return postgres.Builder.
		Select(reportColumns...).
		From("crime_reports r").
		LeftJoin("crime_types ct ON ct.id = r.crime_type_id")
}

// scopePredicate ORs the criteria of scope. The team criterion uses EXISTS
// so a report assigned to several of the viewer's teams appears once.
func scopePredicate(scope domain.ReportScope) sq.Sqlizer {
	var or sq.Or
	if scope.ReporterID != nil {
		or = append(or, sq.Eq{"r.reporter_id": *scope.ReporterID})
	}
	if scope.Area != nil {
		or = append(or, postgres.BoxPredicate("r", *scope.Area))
	}
	if scope.TeamMemberID != nil {
		or = append(or, sq.Expr(teamMemberPredicate, *scope.TeamMemberID))
	}
	return or
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanReport(row pgx.Row) (*domain.CrimeReport, error) {
	var (
		rep    domain.CrimeReport
		status string
	)
	if err := row.Scan(
		&rep.ID, &rep.ReporterID, &rep.CrimeTypeID, &rep.CrimeTypeName,
		&rep.Title, &rep.Details, &rep.Location,
		&rep.Point.Lat, &rep.Point.Lon, &rep.ImageRef, &status,
		&rep.Contact.Name, &rep.Contact.Email, &rep.Contact.Phone,
		&rep.ReportedAt, &rep.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan crime report: %w", err)
	}
	rep.Status = domain.ReportStatus(status)
	return &rep, nil
}
