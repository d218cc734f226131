package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// List returns the reports visible to the requester that match input.
// Requesters whose scope is empty get an empty list, not an error.
func (s *Service) List(ctx context.Context, input ListReportsInput) ([]domain.CrimeReport, error) {
	if input.Search != nil {
		search := strings.TrimSpace(*input.Search)
		if search == "" {
			input.Search = nil
		} else {
			input.Search = &search
		}
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	policy, err := s.policies.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.ReportFilter{
		Status:      input.Status,
		CrimeTypeID: input.CrimeTypeID,
		Search:      input.Search,
		Ordering:    input.Ordering,
		Limit:       input.Limit,
		Offset:      input.Offset,
	}
	if filter.Ordering == "" {
		filter.Ordering = domain.OrderReportedAtDesc
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}

	reports, err := s.reports.List(ctx, policy.ReportScope(), filter)
	if err != nil {
		return nil, fmt.Errorf("report.List: %w", err)
	}
	return reports, nil
}

// Get returns one report with its assignments. Requesters outside the
// report's visibility get ErrForbidden.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ReportDetail, error) {
	policy, err := s.policies.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.Get: %w", err)
	}
	if !policy.CanViewReport(rep) {
		return nil, domain.ErrForbidden
	}

	assignments, err := s.assignments.ListByReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.Get assignments: %w", err)
	}

	return &ReportDetail{Report: rep, Assignments: assignments}, nil
}

// StatusHistory returns the audit trail of a report, newest first. Access
// follows the same rule as Get.
func (s *Service) StatusHistory(ctx context.Context, id uuid.UUID) ([]domain.StatusUpdate, error) {
	policy, err := s.policies.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.StatusHistory: %w", err)
	}
	if !policy.CanViewReport(rep) {
		return nil, domain.ErrForbidden
	}

	entries, err := s.history.ListByReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.StatusHistory: %w", err)
	}
	return entries, nil
}
