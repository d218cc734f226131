package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
	"github.com/heartmarshall/crimewatch-backend/internal/service/visibility"
)

// UpdateReport applies a partial update. A status that differs from the
// stored one is written together with exactly one audit row; an unchanged
// status or an update of other fields writes none. Citizens may edit their
// own reports but not change status.
func (s *Service) UpdateReport(ctx context.Context, input UpdateReportInput) (*domain.CrimeReport, error) {
	trimPtr(input.Title)
	trimPtr(input.Details)
	trimPtr(input.Location)
	input.Notes = strings.TrimSpace(input.Notes)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	policy, err := s.policies.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if !policy.Allowed(visibility.ActionEditReport) {
		return nil, domain.ErrForbidden
	}

	var (
		updated    *domain.CrimeReport
		transition *domain.StatusUpdate
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.reports.GetForUpdate(txCtx, input.ReportID)
		if err != nil {
			return err
		}
		if !policy.CanEditReport(current) {
			return domain.ErrForbidden
		}

		statusChanged := input.Status != nil && *input.Status != current.Status
		if statusChanged && !policy.Allowed(visibility.ActionChangeStatus) {
			return domain.ErrForbidden
		}

		if err := s.ensureCrimeType(txCtx, input.CrimeTypeID); err != nil {
			return err
		}

		if err := s.reports.Update(txCtx, current.ID, input.params()); err != nil {
			return fmt.Errorf("update fields: %w", err)
		}

		if statusChanged {
			transition, err = s.recordTransition(txCtx, current.ID, policy.UserID(), current.Status, *input.Status, input.Notes)
			if err != nil {
				return err
			}
		}

		updated, err = s.reports.GetByID(txCtx, current.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("report.UpdateReport: %w", err)
	}

	if transition != nil {
		s.events.StatusChanged(transition.OldStatus, transition.NewStatus)
		s.log.InfoContext(ctx, "report status changed",
			slog.String("report_id", updated.ID.String()),
			slog.String("actor_id", policy.UserID().String()),
			slog.String("from", transition.OldStatus.String()),
			slog.String("to", transition.NewStatus.String()))
	}

	return updated, nil
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
