package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// MaxPhoneLen is the stored width of every phone column.
const MaxPhoneLen = 15

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// ValidPhone reports whether s looks like a dialable phone number that fits
// in MaxPhoneLen characters.
func ValidPhone(s string) bool {
	return len(s) <= MaxPhoneLen && phonePattern.MatchString(s)
}

// User represents an account of a citizen, police officer or administrator.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Name         string
	Phone        *string
	BadgeNumber  *string
	Role         UserRole
	DepartmentID *uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the role/department invariant: only police officers may
// be affiliated with a department.
func (u *User) Validate() error {
	var errs []FieldError

	if !u.Role.IsValid() {
		errs = append(errs, FieldError{Field: "role", Message: "invalid role"})
	}
	if u.DepartmentID != nil && u.Role != UserRolePolice {
		errs = append(errs, FieldError{Field: "department_id", Message: "only police users may have a department"})
	}
	if u.Phone != nil && !ValidPhone(*u.Phone) {
		errs = append(errs, FieldError{Field: "phone", Message: "invalid phone number"})
	}

	return NewValidationErrors(errs)
}

// HasDepartment returns true if the user is affiliated with a department.
func (u *User) HasDepartment() bool {
	return u.DepartmentID != nil && *u.DepartmentID != uuid.Nil
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
