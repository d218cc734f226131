package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// nullable tells an absent JSON field apart from an explicit null.
type nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type userResponse struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	Phone        *string    `json:"phone"`
	BadgeNumber  *string    `json:"badge_number"`
	Role         string     `json:"role"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		Name:         u.Name,
		Phone:        u.Phone,
		BadgeNumber:  u.BadgeNumber,
		Role:         u.Role.String(),
		DepartmentID: u.DepartmentID,
	}
}

type crimeTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type departmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Area      string    `json:"area"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
}

type teamResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Department     uuid.UUID   `json:"department"`
	DepartmentName string      `json:"department_name"`
	Members        []uuid.UUID `json:"members"`
	CreatedAt      time.Time   `json:"created_at"`
}

type reportResponse struct {
	ID            uuid.UUID  `json:"id"`
	User          uuid.UUID  `json:"user"`
	CrimeType     *uuid.UUID `json:"crime_type"`
	CrimeTypeName *string    `json:"crime_type_name"`
	Title         string     `json:"title"`
	Details       string     `json:"details"`
	Location      string     `json:"location"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	ImageURL      *string    `json:"image_url"`
	Status        string     `json:"status"`
	StatusDisplay string     `json:"status_display"`
	ContactName   string     `json:"contact_name"`
	ContactEmail  string     `json:"contact_email"`
	ContactPhone  string     `json:"contact_phone"`
	ReportedAt    time.Time  `json:"reported_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type reportDetailResponse struct {
	reportResponse
	Assignments []assignmentResponse `json:"assignments"`
}

type assignmentResponse struct {
	ID         uuid.UUID  `json:"id"`
	Report     uuid.UUID  `json:"crime_report"`
	Team       uuid.UUID  `json:"team"`
	TeamName   string     `json:"team_name"`
	AssignedBy *uuid.UUID `json:"assigned_by"`
	AssignedAt time.Time  `json:"assigned_at"`
	Notes      string     `json:"notes"`
}

type assignResponse struct {
	Assignment   assignmentResponse    `json:"assignment"`
	Report       reportResponse        `json:"report"`
	StatusUpdate *statusUpdateResponse `json:"status_update"`
}

type statusUpdateResponse struct {
	ID            uuid.UUID  `json:"id"`
	Report        uuid.UUID  `json:"crime_report"`
	UpdatedBy     *uuid.UUID `json:"updated_by"`
	UpdatedByName *string    `json:"updated_by_name"`
	OldStatus     string     `json:"old_status"`
	NewStatus     string     `json:"new_status"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
}

type statsResponse struct {
	StatusCounts    map[string]int `json:"status_counts"`
	CrimeTypeCounts map[string]int `json:"crime_type_counts"`
	TimelineData    map[string]int `json:"timeline_data"`
}

type alertResponse struct {
	ID        uuid.UUID  `json:"id"`
	Phone     string     `json:"phone"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	CreatedAt time.Time  `json:"created_at"`
	IsHandled bool       `json:"is_handled"`
	HandledAt *time.Time `json:"handled_at"`
	HandledBy *uuid.UUID `json:"handled_by"`
	Notes     string     `json:"notes"`
}

func toCrimeTypeResponse(ct domain.CrimeType) crimeTypeResponse {
	return crimeTypeResponse{ID: ct.ID, Name: ct.Name, Description: ct.Description}
}

func toDepartmentResponse(d domain.PoliceDepartment) departmentResponse {
	return departmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		Address:   d.Address,
		Area:      d.Area,
		Latitude:  d.Location.Lat,
		Longitude: d.Location.Lon,
		Phone:     d.Phone,
		Email:     d.Email,
	}
}

func toTeamResponse(t domain.PoliceTeam) teamResponse {
	members := t.MemberIDs
	if members == nil {
		members = []uuid.UUID{}
	}
	return teamResponse{
		ID:             t.ID,
		Name:           t.Name,
		Department:     t.DepartmentID,
		DepartmentName: t.DepartmentName,
		Members:        members,
		CreatedAt:      t.CreatedAt,
	}
}

func toReportResponse(rep *domain.CrimeReport) reportResponse {
	return reportResponse{
		ID:            rep.ID,
		User:          rep.ReporterID,
		CrimeType:     rep.CrimeTypeID,
		CrimeTypeName: rep.CrimeTypeName,
		Title:         rep.Title,
		Details:       rep.Details,
		Location:      rep.Location,
		Latitude:      rep.Point.Lat,
		Longitude:     rep.Point.Lon,
		ImageURL:      rep.ImageRef,
		Status:        rep.Status.String(),
		StatusDisplay: rep.Status.Display(),
		ContactName:   rep.Contact.Name,
		ContactEmail:  rep.Contact.Email,
		ContactPhone:  rep.Contact.Phone,
		ReportedAt:    rep.ReportedAt,
		UpdatedAt:     rep.UpdatedAt,
	}
}

func toAssignmentResponse(a domain.CrimeAssignment) assignmentResponse {
	return assignmentResponse{
		ID:         a.ID,
		Report:     a.ReportID,
		Team:       a.TeamID,
		TeamName:   a.TeamName,
		AssignedBy: a.AssignedBy,
		AssignedAt: a.AssignedAt,
		Notes:      a.Notes,
	}
}

func toStatusUpdateResponse(u domain.StatusUpdate) statusUpdateResponse {
	return statusUpdateResponse{
		ID:            u.ID,
		Report:        u.ReportID,
		UpdatedBy:     u.ActorID,
		UpdatedByName: u.ActorName,
		OldStatus:     u.OldStatus.String(),
		NewStatus:     u.NewStatus.String(),
		Notes:         u.Notes,
		CreatedAt:     u.CreatedAt,
	}
}

// toStatsResponse always yields objects, never null, for the three maps.
func toStatsResponse(s domain.ReportStats) statsResponse {
	out := statsResponse{
		StatusCounts:    s.StatusCounts,
		CrimeTypeCounts: s.CrimeTypeCounts,
		TimelineData:    s.Timeline,
	}
	if out.StatusCounts == nil {
		out.StatusCounts = map[string]int{}
	}
	if out.CrimeTypeCounts == nil {
		out.CrimeTypeCounts = map[string]int{}
	}
	if out.TimelineData == nil {
		out.TimelineData = map[string]int{}
	}
	return out
}

func toAlertResponse(a *domain.EmergencyAlert) alertResponse {
	return alertResponse{
		ID:        a.ID,
		Phone:     a.Phone,
		Latitude:  a.Point.Lat,
		Longitude: a.Point.Lon,
		CreatedAt: a.CreatedAt,
		IsHandled: a.Handled,
		HandledAt: a.HandledAt,
		HandledBy: a.HandledBy,
		Notes:     a.Notes,
	}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
