package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// RegisterInput holds the fields of a citizen sign-up.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Name     string
	Phone    *string
}

func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if utf8.RuneCountInString(i.Username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "at least 8 characters"})
	} else if len(i.Password) > 72 {
		// bcrypt ignores everything past 72 bytes
		errs = append(errs, domain.FieldError{Field: "password", Message: "at most 72 bytes"})
	}

	if utf8.RuneCountInString(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Phone != nil && !domain.ValidPhone(*i.Phone) {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "invalid phone number"})
	}

	return domain.NewValidationErrors(errs)
}

// LoginPasswordInput holds email + password credentials.
type LoginPasswordInput struct {
	Email    string
	Password string
}

func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}
