package domain

import "github.com/google/uuid"

// Viewer is the requesting user together with their department, loaded once
// per request.
type Viewer struct {
	User       User
	Department *PoliceDepartment
}

// ReportScope describes which reports a viewer may list. A report matches
// when it satisfies any of the non-nil criteria. The zero value matches
// nothing.
type ReportScope struct {
	// ReporterID restricts to reports filed by this user.
	ReporterID *uuid.UUID
	// Area includes reports whose point lies inside the box.
	Area *BoundingBox
	// TeamMemberID includes reports assigned to any team this user belongs to.
	TeamMemberID *uuid.UUID
}

// IsEmpty returns true when the scope matches no report.
func (s ReportScope) IsEmpty() bool {
	return s.ReporterID == nil && s.Area == nil && s.TeamMemberID == nil
}

// AlertScope describes which unhandled alerts a viewer may list.
// The zero value matches nothing.
type AlertScope struct {
	Area *BoundingBox
}

// IsEmpty returns true when the scope matches no alert.
func (s AlertScope) IsEmpty() bool {
	return s.Area == nil
}

// ReportStats holds aggregate counts over a set of reports.
type ReportStats struct {
	StatusCounts    map[string]int
	CrimeTypeCounts map[string]int
	// Timeline maps a calendar day (YYYY-MM-DD, UTC) to the number of
	// reports submitted that day. Days without reports are absent.
	Timeline map[string]int
}

// NewReportStats returns stats with empty, non-nil maps.
func NewReportStats() ReportStats {
	return ReportStats{
		StatusCounts:    map[string]int{},
		CrimeTypeCounts: map[string]int{},
		Timeline:        map[string]int{},
	}
}
