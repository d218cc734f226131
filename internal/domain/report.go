package domain

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CrimeType is static reference data describing a category of crime.
type CrimeType struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// ContactSnapshot is the reporter's contact details captured at submission
// time. It does not follow later edits of the user's profile.
type ContactSnapshot struct {
	Name  string
	Email string
	Phone string
}

// CrimeReport is a citizen-filed report of a crime at a location.
type CrimeReport struct {
	ID            uuid.UUID
	ReporterID    uuid.UUID
	CrimeTypeID   *uuid.UUID
	CrimeTypeName *string
	Title         string
	Details       string
	Location      string
	Point         Point
	ImageRef      *string
	Status        ReportStatus
	Contact       ContactSnapshot
	ReportedAt    time.Time
	UpdatedAt     time.Time
}

// ReportUpdateParams lists the mutable fields of a report. Nil means
// "leave unchanged"; the Clear flags null the optional columns and win over
// their pointer. Status is applied separately through the status audit path
// and is not part of this struct.
type ReportUpdateParams struct {
	Title          *string
	Details        *string
	Location       *string
	Point          *Point
	CrimeTypeID    *uuid.UUID
	ClearCrimeType bool
	ImageRef       *string
	ClearImage     bool
}

// IsEmpty returns true when no field is set.
func (p ReportUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Details == nil && p.Location == nil &&
		p.Point == nil && p.CrimeTypeID == nil && p.ImageRef == nil &&
		!p.ClearCrimeType && !p.ClearImage
}

// StatusUpdate is an immutable audit record of one report status change.
type StatusUpdate struct {
	ID        uuid.UUID
	ReportID  uuid.UUID
	ActorID   *uuid.UUID
	ActorName *string
	OldStatus ReportStatus
	NewStatus ReportStatus
	Notes     string
	CreatedAt time.Time
}

// ReportOrdering is an allowed sort key for report listings.
// A leading "-" means descending.
type ReportOrdering string

const (
	OrderReportedAtAsc  ReportOrdering = "reported_at"
	OrderReportedAtDesc ReportOrdering = "-reported_at"
	OrderStatusAsc      ReportOrdering = "status"
	OrderStatusDesc     ReportOrdering = "-status"
)

func (o ReportOrdering) IsValid() bool {
	switch o {
	case OrderReportedAtAsc, OrderReportedAtDesc, OrderStatusAsc, OrderStatusDesc:
		return true
	}
	return false
}

// ReportFilter contains filtering/pagination parameters for report listings.
type ReportFilter struct {
	Status      *ReportStatus
	CrimeTypeID *uuid.UUID
	Search      *string
	Ordering    ReportOrdering
	Limit       int
	Offset      int
}

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png"}

// ValidImageRef reports whether ref names a jpg, jpeg or png file.
func ValidImageRef(ref string) bool {
	ext := strings.ToLower(path.Ext(ref))
	for _, allowed := range allowedImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
