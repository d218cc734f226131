package emergency

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// Raise stores a new unhandled alert. No authentication is required.
func (s *Service) Raise(ctx context.Context, input RaiseInput) (*domain.EmergencyAlert, error) {
	input.Phone = strings.TrimSpace(input.Phone)
	input.Notes = strings.TrimSpace(input.Notes)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	alert, err := s.alerts.Create(ctx, domain.EmergencyAlert{
		Phone: input.Phone,
		Point: input.Point,
		Notes: input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("emergency.Raise: %w", err)
	}

	s.events.AlertRaised()
	s.log.WarnContext(ctx, "emergency alert raised",
		slog.String("alert_id", alert.ID.String()),
		slog.Float64("lat", alert.Point.Lat),
		slog.Float64("lon", alert.Point.Lon))

	return alert, nil
}

// ListUnhandled returns the open alerts near the officer's department,
// newest first. Everyone else gets an empty list.
func (s *Service) ListUnhandled(ctx context.Context) ([]domain.EmergencyAlert, error) {
	policy, err := s.policies.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	alerts, err := s.alerts.ListUnhandled(ctx, policy.AlertScope())
	if err != nil {
		return nil, fmt.Errorf("emergency.ListUnhandled: %w", err)
	}
	return alerts, nil
}

// Handle marks an alert as handled by the requester. Handling it again
// overwrites the handler and timestamp.
func (s *Service) Handle(ctx context.Context, input HandleInput) (*domain.EmergencyAlert, error) {
	input.Notes = strings.TrimSpace(input.Notes)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	policy, err := s.policies.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	alert, err := s.alerts.GetByID(ctx, input.AlertID)
	if err != nil {
		return nil, fmt.Errorf("emergency.Handle: %w", err)
	}
	if !policy.CanHandleAlert(alert) {
		return nil, domain.ErrForbidden
	}

	handled, err := s.alerts.MarkHandled(ctx, alert.ID, policy.UserID(), input.Notes, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("emergency.Handle: %w", err)
	}

	s.events.AlertHandled()
	s.log.InfoContext(ctx, "emergency alert handled",
		slog.String("alert_id", handled.ID.String()),
		slog.String("handled_by", policy.UserID().String()),
		slog.Bool("repeat", alert.Handled))

	return handled, nil
}
