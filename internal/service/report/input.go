package report

import (
	"errors"
	"net/mail"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200

	maxTitleLen       = 200
	maxLocationLen    = 255
	maxContactNameLen = 100
	maxNotesLen       = 2000
	maxSearchLen      = 200
)

// CreateReportInput holds the fields of a new crime report. Nil contact
// fields default to the reporter's profile.
type CreateReportInput struct {
	CrimeTypeID  *uuid.UUID
	Title        string
	Details      string
	Location     string
	Point        domain.Point
	ImageRef     *string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
}

func (i CreateReportInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateTitle(&i.Title)...)

	if i.Details == "" {
		errs = append(errs, domain.FieldError{Field: "details", Message: "required"})
	}

	errs = append(errs, validateLocation(&i.Location)...)
	errs = append(errs, i.Point.Validate("")...)
	errs = append(errs, validateImageRef(i.ImageRef)...)

	return domain.NewValidationErrors(errs)
}

func validateContact(c domain.ContactSnapshot) []domain.FieldError {
	var errs []domain.FieldError

	if c.Name == "" {
		errs = append(errs, domain.FieldError{Field: "contact_name", Message: "required"})
	} else if utf8.RuneCountInString(c.Name) > maxContactNameLen {
		errs = append(errs, domain.FieldError{Field: "contact_name", Message: "too long"})
	}

	if c.Email == "" {
		errs = append(errs, domain.FieldError{Field: "contact_email", Message: "required"})
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "contact_email", Message: "invalid email"})
	}

	if c.Phone != "" {
		if !domain.ValidPhone(c.Phone) {
			errs = append(errs, domain.FieldError{Field: "contact_phone", Message: "invalid phone number"})
		}
	}

	return errs
}

func validateTitle(title *string) []domain.FieldError {
	if title == nil {
		return nil
	}
	if *title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if utf8.RuneCountInString(*title) > maxTitleLen {
		return []domain.FieldError{{Field: "title", Message: "too long"}}
	}
	return nil
}

func validateLocation(location *string) []domain.FieldError {
	if location == nil {
		return nil
	}
	if *location == "" {
		return []domain.FieldError{{Field: "location", Message: "required"}}
	}
	if utf8.RuneCountInString(*location) > maxLocationLen {
		return []domain.FieldError{{Field: "location", Message: "too long"}}
	}
	return nil
}

func validateImageRef(ref *string) []domain.FieldError {
	if ref == nil || *ref == "" {
		return nil
	}
	if !domain.ValidImageRef(*ref) {
		return []domain.FieldError{{Field: "image", Message: "must be a jpg, jpeg or png file"}}
	}
	return nil
}

// ListReportsInput holds listing filters. Zero values mean "no filter".
type ListReportsInput struct {
	Status      *domain.ReportStatus
	CrimeTypeID *uuid.UUID
	Search      *string
	Ordering    domain.ReportOrdering
	Limit       int
	Offset      int
}

func (i ListReportsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Ordering != "" && !i.Ordering.IsValid() {
		errs = append(errs, domain.FieldError{Field: "ordering", Message: "must be one of reported_at, -reported_at, status, -status"})
	}
	if i.Search != nil && utf8.RuneCountInString(*i.Search) > maxSearchLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	return domain.NewValidationErrors(errs)
}

// UpdateReportInput is a partial update. Nil fields are left unchanged.
// An empty ImageRef removes the image; ClearCrimeType removes the crime type.
// Notes is stored on the audit row when the status changes.
type UpdateReportInput struct {
	ReportID       uuid.UUID
	Title          *string
	Details        *string
	Location       *string
	Point          *domain.Point
	CrimeTypeID    *uuid.UUID
	ClearCrimeType bool
	ImageRef       *string
	Status         *domain.ReportStatus
	Notes          string
}

func (i UpdateReportInput) Validate() error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	errs = append(errs, validateTitle(i.Title)...)
	if i.Details != nil && *i.Details == "" {
		errs = append(errs, domain.FieldError{Field: "details", Message: "cannot be empty"})
	}
	errs = append(errs, validateLocation(i.Location)...)
	if i.Point != nil {
		errs = append(errs, i.Point.Validate("")...)
	}
	errs = append(errs, validateImageRef(i.ImageRef)...)
	if i.ClearCrimeType && i.CrimeTypeID != nil {
		errs = append(errs, domain.FieldError{Field: "crime_type", Message: "cannot set and clear at once"})
	}

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if utf8.RuneCountInString(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}

func (i UpdateReportInput) params() domain.ReportUpdateParams {
	p := domain.ReportUpdateParams{
		Title:          i.Title,
		Details:        i.Details,
		Location:       i.Location,
		Point:          i.Point,
		CrimeTypeID:    i.CrimeTypeID,
		ClearCrimeType: i.ClearCrimeType,
		ImageRef:       i.ImageRef,
	}
	if i.ImageRef != nil && *i.ImageRef == "" {
		p.ImageRef = nil
		p.ClearImage = true
	}
	return p
}

// AssignInput binds a report to a team.
type AssignInput struct {
	ReportID uuid.UUID
	TeamID   uuid.UUID
	Notes    string
}

func (i AssignInput) Validate() error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "crime_report", Message: "required"})
	}
	if i.TeamID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "team", Message: "required"})
	}
	if utf8.RuneCountInString(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
