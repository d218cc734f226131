// Package directory serves the read-only reference data: departments,
// crime types and police teams.
package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
	"github.com/heartmarshall/crimewatch-backend/internal/service/visibility"
)

type policyResolver interface {
	Resolve(ctx context.Context) (visibility.Policy, error)
}

type departmentRepo interface {
	List(ctx context.Context) ([]domain.PoliceDepartment, error)
}

type crimeTypeRepo interface {
	List(ctx context.Context) ([]domain.CrimeType, error)
}

type teamRepo interface {
	ListByDepartment(ctx context.Context, deptID uuid.UUID) ([]domain.PoliceTeam, error)
}

type Service struct {
	log         *slog.Logger
	policies    policyResolver
	departments departmentRepo
	crimeTypes  crimeTypeRepo
	teams       teamRepo
}

func NewService(
	logger *slog.Logger,
	policies policyResolver,
	departments departmentRepo,
	crimeTypes crimeTypeRepo,
	teams teamRepo,
) *Service {
	return &Service{
		log:         logger.With("service", "directory"),
		policies:    policies,
		departments: departments,
		crimeTypes:  crimeTypes,
		teams:       teams,
	}
}

// Departments lists every department. Any authenticated user may call it.
func (s *Service) Departments(ctx context.Context) ([]domain.PoliceDepartment, error) {
	if _, err := s.policies.Resolve(ctx); err != nil {
		return nil, err
	}

	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory.Departments: %w", err)
	}
	return depts, nil
}

// CrimeTypes lists every crime type. Any authenticated user may call it.
func (s *Service) CrimeTypes(ctx context.Context) ([]domain.CrimeType, error) {
	if _, err := s.policies.Resolve(ctx); err != nil {
		return nil, err
	}

	types, err := s.crimeTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory.CrimeTypes: %w", err)
	}
	return types, nil
}

// Teams lists the teams of the officer's own department. Everyone else,
// including officers without a department, gets an empty list.
func (s *Service) Teams(ctx context.Context) ([]domain.PoliceTeam, error) {
	policy, err := s.policies.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	viewer := policy.Viewer()
	if !viewer.User.Role.IsPolice() || viewer.Department == nil {
		return []domain.PoliceTeam{}, nil
	}

	teams, err := s.teams.ListByDepartment(ctx, viewer.Department.ID)
	if err != nil {
		return nil, fmt.Errorf("directory.Teams: %w", err)
	}
	return teams, nil
}
