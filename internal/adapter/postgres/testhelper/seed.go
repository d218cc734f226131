package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a citizen with a unique email and username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleCitizen, nil)
}

// SeedPolice creates a police officer attached to deptID (nil for none).
func SeedPolice(t *testing.T, pool *pgxpool.Pool, deptID *uuid.UUID) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRolePolice, deptID)
}

// SeedAdmin creates an administrator.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin, nil)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, deptID *uuid.UUID) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		Name:         "Test User " + suffix,
		Role:         role,
		DepartmentID: deptID,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehol",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, name, role, department_id, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.Username, user.Name, string(user.Role), user.DepartmentID,
		user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	return user
}

// SeedDepartment creates a police department centered at p.
func SeedDepartment(t *testing.T, pool *pgxpool.Pool, p domain.Point) domain.PoliceDepartment {
	t.Helper()

	suffix := uniqueSuffix()
	dept := domain.PoliceDepartment{
		ID:       uuid.New(),
		Name:     "Precinct " + suffix,
		Address:  suffix + " Main St",
		Area:     "District " + suffix,
		Location: p,
		Phone:    "+15550000000",
		Email:    "precinct-" + suffix + "@example.com",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO police_departments (id, name, address, area, latitude, longitude, phone, email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		dept.ID, dept.Name, dept.Address, dept.Area, p.Lat, p.Lon, dept.Phone, dept.Email,
	)
	if err != nil {
		t.Fatalf("testhelper: seed department: %v", err)
	}

	return dept
}

// SeedCrimeType creates a crime type with a unique name.
func SeedCrimeType(t *testing.T, pool *pgxpool.Pool) domain.CrimeType {
	t.Helper()

	ct := domain.CrimeType{
		ID:          uuid.New(),
		Name:        "Theft " + uniqueSuffix(),
		Description: "Taking property without consent",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO crime_types (id, name, description) VALUES ($1, $2, $3)`,
		ct.ID, ct.Name, ct.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: seed crime type: %v", err)
	}

	return ct
}

// SeedReport creates a report filed by reporterID at p with the given status.
// crimeTypeID may be nil.
func SeedReport(t *testing.T, pool *pgxpool.Pool, reporterID uuid.UUID, p domain.Point, status domain.ReportStatus, crimeTypeID *uuid.UUID) domain.CrimeReport {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	r := domain.CrimeReport{
		ID:          uuid.New(),
		ReporterID:  reporterID,
		CrimeTypeID: crimeTypeID,
		Title:       "Report " + suffix,
		Details:     "Details " + suffix,
		Location:    "Corner of " + suffix,
		Point:       p,
		Status:      status,
		Contact:     domain.ContactSnapshot{Name: "Reporter " + suffix, Email: suffix + "@example.com"},
		ReportedAt:  ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO crime_reports (id, reporter_id, crime_type_id, title, details, location,
		                            latitude, longitude, status, contact_name, contact_email,
		                            contact_phone, reported_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		r.ID, r.ReporterID, r.CrimeTypeID, r.Title, r.Details, r.Location,
		p.Lat, p.Lon, string(r.Status), r.Contact.Name, r.Contact.Email,
		r.Contact.Phone, r.ReportedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed report: %v", err)
	}

	return r
}

// SeedTeam creates a team in deptID with the given members.
func SeedTeam(t *testing.T, pool *pgxpool.Pool, deptID uuid.UUID, memberIDs ...uuid.UUID) domain.PoliceTeam {
	t.Helper()
	ctx := context.Background()

	team := domain.PoliceTeam{
		ID:           uuid.New(),
		Name:         "Team " + uniqueSuffix(),
		DepartmentID: deptID,
		MemberIDs:    memberIDs,
		CreatedAt:    now(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO police_teams (id, name, department_id, created_at) VALUES ($1, $2, $3, $4)`,
		team.ID, team.Name, team.DepartmentID, team.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed team: %v", err)
	}

	for _, uid := range memberIDs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO police_team_members (team_id, user_id) VALUES ($1, $2)`,
			team.ID, uid,
		); err != nil {
			t.Fatalf("testhelper: seed team member: %v", err)
		}
	}

	return team
}

// SeedAlert creates an unhandled emergency alert at p.
func SeedAlert(t *testing.T, pool *pgxpool.Pool, p domain.Point) domain.EmergencyAlert {
	t.Helper()

	a := domain.EmergencyAlert{
		ID:        uuid.New(),
		Phone:     "+15551234567",
		Point:     p,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO emergency_alerts (id, phone, latitude, longitude, created_at) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Phone, p.Lat, p.Lon, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed alert: %v", err)
	}

	return a
}
