package user

import (
	"unicode/utf8"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// UpdateProfileInput holds the editable profile fields. Nil keeps the
// current value.
type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if utf8.RuneCountInString(*i.Name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Phone != nil && !domain.ValidPhone(*i.Phone) {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "invalid phone number"})
	}

	return domain.NewValidationErrors(errs)
}

// PromoteInput changes the role of the account identified by Email.
// Department and Team are looked up by name; Team requires Department.
type PromoteInput struct {
	Email       string
	Role        domain.UserRole
	Department  string
	BadgeNumber *string
	Team        string
}

func (i PromoteInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be citizen, police or admin"})
	}

	if i.Department != "" && i.Role != domain.UserRolePolice {
		errs = append(errs, domain.FieldError{Field: "department", Message: "only police users may have a department"})
	}

	if i.Team != "" && i.Department == "" {
		errs = append(errs, domain.FieldError{Field: "team", Message: "requires a department"})
	}

	if i.BadgeNumber != nil && utf8.RuneCountInString(*i.BadgeNumber) > 50 {
		errs = append(errs, domain.FieldError{Field: "badge_number", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}
