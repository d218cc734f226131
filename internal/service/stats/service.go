// Package stats aggregates report counts for police dashboards.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
	"github.com/heartmarshall/crimewatch-backend/internal/service/visibility"
)

type policyResolver interface {
	Resolve(ctx context.Context) (visibility.Policy, error)
}

type reportRepo interface {
	Stats(ctx context.Context, scope domain.ReportScope) (domain.ReportStats, error)
}

type Service struct {
	log      *slog.Logger
	policies policyResolver
	reports  reportRepo
}

func NewService(logger *slog.Logger, policies policyResolver, reports reportRepo) *Service {
	return &Service{
		log:      logger.With("service", "stats"),
		policies: policies,
		reports:  reports,
	}
}

// Get returns status, crime type and daily counts over the reports inside
// the officer's department area. Reports reachable only through team
// assignment are not counted. An officer without a department gets empty
// maps.
func (s *Service) Get(ctx context.Context) (domain.ReportStats, error) {
	policy, err := s.policies.Resolve(ctx)
	if err != nil {
		return domain.ReportStats{}, err
	}
	if !policy.Allowed(visibility.ActionReadStats) {
		return domain.ReportStats{}, domain.ErrForbidden
	}

	scope := policy.StatsScope()
	if scope.IsEmpty() {
		s.log.DebugContext(ctx, "stats requested without department",
			slog.String("user_id", policy.UserID().String()))
		return domain.NewReportStats(), nil
	}

	stats, err := s.reports.Stats(ctx, scope)
	if err != nil {
		return domain.ReportStats{}, fmt.Errorf("stats.Get: %w", err)
	}
	return stats, nil
}
