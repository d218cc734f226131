package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, phone *string) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole, deptID *uuid.UUID, badge *string) (*domain.User, error)
}

type departmentRepo interface {
	GetByName(ctx context.Context, name string) (*domain.PoliceDepartment, error)
}

type teamRepo interface {
	Upsert(ctx context.Context, deptID uuid.UUID, name string) (*domain.PoliceTeam, error)
	AddMember(ctx context.Context, teamID, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile operations and operator role management.
type Service struct {
	log         *slog.Logger
	users       userRepo
	departments departmentRepo
	teams       teamRepo
	tx          txManager
}

func NewService(
	logger *slog.Logger,
	users userRepo,
	departments departmentRepo,
	teams teamRepo,
	tx txManager,
) *Service {
	return &Service{
		log:         logger.With("service", "user"),
		users:       users,
		departments: departments,
		teams:       teams,
		tx:          tx,
	}
}
