// Package seeder loads operator reference data (departments, crime types and
// teams) into the database.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// DepartmentRepo is implemented by department.Repo.
type DepartmentRepo interface {
	Upsert(ctx context.Context, d domain.PoliceDepartment) (*domain.PoliceDepartment, error)
	GetByName(ctx context.Context, name string) (*domain.PoliceDepartment, error)
}

// CrimeTypeRepo is implemented by crimetype.Repo.
type CrimeTypeRepo interface {
	Upsert(ctx context.Context, name, description string) (*domain.CrimeType, error)
}

// TeamRepo is implemented by team.Repo.
type TeamRepo interface {
	Upsert(ctx context.Context, deptID uuid.UUID, name string) (*domain.PoliceTeam, error)
}
