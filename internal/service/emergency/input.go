package emergency

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

const maxNotesLen = 2000

// RaiseInput is an anonymous distress signal.
type RaiseInput struct {
	Phone string
	Point domain.Point
	Notes string
}

func (i RaiseInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Phone == "":
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	case !domain.ValidPhone(i.Phone):
		errs = append(errs, domain.FieldError{Field: "phone", Message: "invalid phone number"})
	}

	errs = append(errs, i.Point.Validate("")...)

	if utf8.RuneCountInString(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}

// HandleInput marks an alert as handled. Empty notes keep any existing
// notes.
type HandleInput struct {
	AlertID uuid.UUID
	Notes   string
}

func (i HandleInput) Validate() error {
	var errs []domain.FieldError

	if i.AlertID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if utf8.RuneCountInString(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}
