package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// Promote sets the role, department and badge of an existing account and
// optionally adds it to a team, creating the team when missing. It is an
// operator action and performs no caller authorization.
//
// Moving a user out of the police role clears the department.
func (s *Service) Promote(ctx context.Context, input PromoteInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Department = strings.TrimSpace(input.Department)
	input.Team = strings.TrimSpace(input.Team)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.User

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := s.users.GetByEmail(txCtx, input.Email)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		var deptID *uuid.UUID
		if input.Department != "" {
			dept, err := s.departments.GetByName(txCtx, input.Department)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return domain.NewValidationError("department", "unknown department")
				}
				return fmt.Errorf("get department: %w", err)
			}
			deptID = &dept.ID
		} else if input.Role == domain.UserRolePolice {
			// keep an officer's current department when none is given
			deptID = target.DepartmentID
		}

		updated, err = s.users.UpdateRole(txCtx, target.ID, input.Role, deptID, input.BadgeNumber)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}

		if input.Team != "" {
			team, err := s.teams.Upsert(txCtx, *deptID, input.Team)
			if err != nil {
				return fmt.Errorf("upsert team: %w", err)
			}
			if err := s.teams.AddMember(txCtx, team.ID, target.ID); err != nil {
				return fmt.Errorf("add team member: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return nil, ve
		}
		return nil, fmt.Errorf("user.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("user_id", updated.ID.String()),
		slog.String("role", updated.Role.String()),
		slog.String("department", input.Department),
		slog.String("team", input.Team),
	)

	return updated, nil
}
