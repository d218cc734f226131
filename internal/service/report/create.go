package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
	"github.com/heartmarshall/crimewatch-backend/internal/service/visibility"
)

// Create files a new report as the requesting citizen. The contact
// snapshot is frozen at this point and does not follow profile edits.
func (s *Service) Create(ctx context.Context, input CreateReportInput) (*domain.CrimeReport, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Details = strings.TrimSpace(input.Details)
	input.Location = strings.TrimSpace(input.Location)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	policy, err := s.policies.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if !policy.Allowed(visibility.ActionFileReport) {
		return nil, domain.ErrForbidden
	}

	reporter := policy.Viewer().User
	contact := contactSnapshot(reporter, input)
	if errs := validateContact(contact); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	if err := s.ensureCrimeType(ctx, input.CrimeTypeID); err != nil {
		return nil, err
	}

	imageRef := input.ImageRef
	if imageRef != nil && *imageRef == "" {
		imageRef = nil
	}

	created, err := s.reports.Create(ctx, &domain.CrimeReport{
		ReporterID:  reporter.ID,
		CrimeTypeID: input.CrimeTypeID,
		Title:       input.Title,
		Details:     input.Details,
		Location:    input.Location,
		Point:       input.Point,
		ImageRef:    imageRef,
		Status:      domain.ReportStatusPending,
		Contact:     contact,
	})
	if err != nil {
		return nil, fmt.Errorf("report.Create: %w", err)
	}

	s.events.ReportFiled()
	s.log.InfoContext(ctx, "report filed",
		slog.String("report_id", created.ID.String()),
		slog.String("reporter_id", reporter.ID.String()))

	return created, nil
}

func contactSnapshot(u domain.User, input CreateReportInput) domain.ContactSnapshot {
	c := domain.ContactSnapshot{Name: u.Name, Email: u.Email}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}

	if input.ContactName != nil {
		c.Name = strings.TrimSpace(*input.ContactName)
	}
	if input.ContactEmail != nil {
		c.Email = strings.TrimSpace(*input.ContactEmail)
	}
	if input.ContactPhone != nil {
		c.Phone = strings.TrimSpace(*input.ContactPhone)
	}
	return c
}
