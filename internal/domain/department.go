package domain

import (
	"time"

	"github.com/google/uuid"
)

// PoliceDepartment is a fixed police station with a known location.
// Departments are seeded by operators and never updated through the API.
type PoliceDepartment struct {
	ID       uuid.UUID
	Name     string
	Address  string
	Area     string
	Location Point
	Phone    string
	Email    string
}

// PoliceTeam is a group of officers owned by exactly one department.
type PoliceTeam struct {
	ID             uuid.UUID
	Name           string
	DepartmentID   uuid.UUID
	DepartmentName string
	MemberIDs      []uuid.UUID
	CreatedAt      time.Time
}

// HasMember reports whether userID belongs to the team.
func (t *PoliceTeam) HasMember(userID uuid.UUID) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// CrimeAssignment binds a report to an investigating team.
type CrimeAssignment struct {
	ID         uuid.UUID
	ReportID   uuid.UUID
	TeamID     uuid.UUID
	TeamName   string
	AssignedBy *uuid.UUID
	AssignedAt time.Time
	Notes      string
}
