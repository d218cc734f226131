package visibility

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
	"github.com/heartmarshall/crimewatch-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type departmentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PoliceDepartment, error)
}

// Resolver loads the requester and their department and returns the policy
// for their role.
type Resolver struct {
	log         *slog.Logger
	users       userRepo
	departments departmentRepo
	authz       *Authorizer
	degrees     float64
}

func NewResolver(logger *slog.Logger, users userRepo, departments departmentRepo, authz *Authorizer, proximityDegrees float64) *Resolver {
	if proximityDegrees <= 0 {
		proximityDegrees = domain.DefaultProximityDegrees
	}
	return &Resolver{
		log:         logger.With("service", "visibility"),
		users:       users,
		departments: departments,
		authz:       authz,
		degrees:     proximityDegrees,
	}
}

// Resolve returns the policy of the authenticated user in ctx. The role is
// always read from the stored user, not from the token claim.
func (r *Resolver) Resolve(ctx context.Context) (Policy, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("visibility.Resolve get user: %w", err)
	}

	viewer := domain.Viewer{User: *user}

	if user.Role == domain.UserRolePolice && user.HasDepartment() {
		dept, err := r.departments.GetByID(ctx, *user.DepartmentID)
		switch {
		case err == nil:
			viewer.Department = dept
		case errors.Is(err, domain.ErrNotFound):
			r.log.WarnContext(ctx, "officer references missing department",
				slog.String("user_id", user.ID.String()),
				slog.String("department_id", user.DepartmentID.String()))
		default:
			return nil, fmt.Errorf("visibility.Resolve get department: %w", err)
		}
	}

	return ForViewer(viewer, r.authz, r.degrees), nil
}
