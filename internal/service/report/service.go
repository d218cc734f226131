// Package report implements crime report submission, listing, updates,
// team assignment and the status audit trail.
package report

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

type reportRepo interface {
	Create(ctx context.Context, rep *domain.CrimeReport) (*domain.CrimeReport, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CrimeReport, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.CrimeReport, error)
	List(ctx context.Context, scope domain.ReportScope, filter domain.ReportFilter) ([]domain.CrimeReport, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ReportUpdateParams) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
}

type statusLog interface {
	Create(ctx context.Context, u domain.StatusUpdate) (*domain.StatusUpdate, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.StatusUpdate, error)
}

type assignmentRepo interface {
	Create(ctx context.Context, a domain.CrimeAssignment) (*domain.CrimeAssignment, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.CrimeAssignment, error)
}

type teamRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PoliceTeam, error)
}

type crimeTypeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CrimeType, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventRecorder interface {
	ReportFiled()
	StatusChanged(from, to domain.ReportStatus)
	TeamAssigned()
}

// Service implements report operations. Every call resolves the requester's
// visibility policy once and consults it for all checks.
type Service struct {
	log         *slog.Logger
	policies    policyResolver
	reports     reportRepo
	history     statusLog
	assignments assignmentRepo
	teams       teamRepo
	crimeTypes  crimeTypeRepo
	tx          txManager
	events      eventRecorder
}

func NewService(
	logger *slog.Logger,
	policies policyResolver,
	reports reportRepo,
	history statusLog,
	assignments assignmentRepo,
	teams teamRepo,
	crimeTypes crimeTypeRepo,
	tx txManager,
	events eventRecorder,
) *Service {
	return &Service{
		log:         logger.With("service", "report"),
		policies:    policies,
		reports:     reports,
		history:     history,
		assignments: assignments,
		teams:       teams,
		crimeTypes:  crimeTypes,
		tx:          tx,
		events:      events,
	}
}

// recordTransition sets the report status and appends the matching audit
// row. It must run inside a transaction that already holds the report row
// lock, so that the pair is written atomically and per-report serialized.
func (s *Service) recordTransition(
	ctx context.Context,
	reportID, actorID uuid.UUID,
	from, to domain.ReportStatus,
	notes string,
) (*domain.StatusUpdate, error) {
	if err := s.reports.SetStatus(ctx, reportID, to); err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	entry, err := s.history.Create(ctx, domain.StatusUpdate{
		ReportID:  reportID,
		ActorID:   &actorID,
		OldStatus: from,
		NewStatus: to,
		Notes:     notes,
	})
	if err != nil {
		return nil, fmt.Errorf("append status update: %w", err)
	}

	return entry, nil
}

// ensureCrimeType turns an unknown crime type into a field error.
func (s *Service) ensureCrimeType(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.crimeTypes.GetByID(ctx, *id); err != nil {
		if isNotFound(err) {
			return domain.NewValidationError("crime_type", "unknown crime type")
		}
		return fmt.Errorf("get crime type: %w", err)
	}
	return nil
}
