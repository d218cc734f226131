package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
	"github.com/heartmarshall/crimewatch-backend/internal/service/visibility"
)

// Assign binds a report to a police team. A pending report moves to
// under_investigation with one audit row naming the team; any other status
// is left as is and no audit row is written. All writes share one
// transaction.
func (s *Service) Assign(ctx context.Context, input AssignInput) (*AssignResult, error) {
	input.Notes = strings.TrimSpace(input.Notes)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	policy, err := s.policies.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if !policy.Allowed(visibility.ActionAssignTeam) {
		return nil, domain.ErrForbidden
	}

	result := &AssignResult{}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rep, err := s.reports.GetForUpdate(txCtx, input.ReportID)
		if err != nil {
			return err
		}

		team, err := s.teams.GetByID(txCtx, input.TeamID)
		if err != nil {
			if isNotFound(err) {
				return domain.NewValidationError("team", "unknown team")
			}
			return fmt.Errorf("get team: %w", err)
		}

		assignerID := policy.UserID()
		result.Assignment, err = s.assignments.Create(txCtx, domain.CrimeAssignment{
			ReportID:   rep.ID,
			TeamID:     team.ID,
			AssignedBy: &assignerID,
			Notes:      input.Notes,
		})
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}
		result.Assignment.TeamName = team.Name

		if rep.Status == domain.ReportStatusPending {
			result.StatusUpdate, err = s.recordTransition(txCtx, rep.ID, assignerID,
				domain.ReportStatusPending, domain.ReportStatusUnderInvestigation,
				fmt.Sprintf("Team %s assigned", team.Name))
			if err != nil {
				return err
			}
			rep.Status = domain.ReportStatusUnderInvestigation
		}

		result.Report = rep
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("report.Assign: %w", err)
	}

	s.events.TeamAssigned()
	if result.StatusUpdate != nil {
		s.events.StatusChanged(result.StatusUpdate.OldStatus, result.StatusUpdate.NewStatus)
	}

	s.log.InfoContext(ctx, "team assigned",
		slog.String("report_id", result.Report.ID.String()),
		slog.String("team_id", input.TeamID.String()),
		slog.String("assigned_by", policy.UserID().String()),
		slog.Bool("status_changed", result.StatusUpdate != nil))

	return result, nil
}
