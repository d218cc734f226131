// Package emergency implements anonymous emergency alerts and their
// handling by police and administrators.
package emergency

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
	"github.com/heartmarshall/crimewatch-backend/internal/service/visibility"
)

type policyResolver interface {
	Resolve(ctx context.Context) (visibility.Policy, error)
}

type alertRepo interface {
	Create(ctx context.Context, a domain.EmergencyAlert) (*domain.EmergencyAlert, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EmergencyAlert, error)
	ListUnhandled(ctx context.Context, scope domain.AlertScope) ([]domain.EmergencyAlert, error)
	MarkHandled(ctx context.Context, id, handledBy uuid.UUID, notes string, at time.Time) (*domain.EmergencyAlert, error)
}

type eventRecorder interface {
	AlertRaised()
	AlertHandled()
}

type Service struct {
	log      *slog.Logger
	policies policyResolver
	alerts   alertRepo
	events   eventRecorder
	now      func() time.Time
}

func NewService(logger *slog.Logger, policies policyResolver, alerts alertRepo, events eventRecorder) *Service {
	return &Service{
		log:      logger.With("service", "emergency"),
		policies: policies,
		alerts:   alerts,
		events:   events,
		now:      time.Now,
	}
}
