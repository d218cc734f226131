package visibility

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// Policy is the visibility and permission view of one requester. It is
// resolved once per request and then consulted by every service call.
type Policy interface {
	Viewer() domain.Viewer
	UserID() uuid.UUID
	Role() domain.UserRole

	// Allowed reports whether the role may perform act at all.
	Allowed(act Action) bool

	// ReportScope is the set of reports returned by listings.
	ReportScope() domain.ReportScope
	// StatsScope is the set aggregated by stats. It never includes
	// team-assigned reports outside the department area.
	StatsScope() domain.ReportScope
	// AlertScope is the set of unhandled alerts returned by listings.
	AlertScope() domain.AlertScope

	CanViewReport(r *domain.CrimeReport) bool
	CanEditReport(r *domain.CrimeReport) bool
	CanHandleAlert(a *domain.EmergencyAlert) bool
}

type basePolicy struct {
	viewer domain.Viewer
	authz  *Authorizer
}

func (p basePolicy) Viewer() domain.Viewer { return p.viewer }
func (p basePolicy) UserID() uuid.UUID { return p.viewer.User.ID }
func (p basePolicy) Role() domain.UserRole { return p.viewer.User.Role }
func (p basePolicy) Allowed(act Action) bool { return p.authz.Allowed(p.Role(), act) }
func (basePolicy) StatsScope() domain.ReportScope { return domain.ReportScope{} }
func (basePolicy) AlertScope() domain.AlertScope { return domain.AlertScope{} }

// citizenPolicy: own reports only, no alerts.
type citizenPolicy struct {
	basePolicy
}

func (p citizenPolicy) ReportScope() domain.ReportScope {
	id := p.UserID()
	return domain.ReportScope{ReporterID: &id}
}

func (p citizenPolicy) CanViewReport(r *domain.CrimeReport) bool {
	return r.ReporterID == p.UserID()
}

func (p citizenPolicy) CanEditReport(r *domain.CrimeReport) bool {
	return p.Allowed(ActionEditReport) && r.ReporterID == p.UserID()
}

func (citizenPolicy) CanHandleAlert(*domain.EmergencyAlert) bool { return false }

// policePolicy: department area plus reports assigned to the officer's
// teams. Without a department area is nil and all listings are empty.
type policePolicy struct {
	basePolicy
	area *domain.BoundingBox
}

func (p policePolicy) ReportScope() domain.ReportScope {
	if p.area == nil {
		return domain.ReportScope{}
	}
	id := p.UserID()
	return domain.ReportScope{Area: p.area, TeamMemberID: &id}
}

func (p policePolicy) StatsScope() domain.ReportScope {
	return domain.ReportScope{Area: p.area}
}

func (p policePolicy) AlertScope() domain.AlertScope {
	return domain.AlertScope{Area: p.area}
}

// Any officer may open any report by id; listings stay scoped.
func (policePolicy) CanViewReport(*domain.CrimeReport) bool { return true }

func (p policePolicy) CanEditReport(*domain.CrimeReport) bool {
	return p.Allowed(ActionEditReport)
}

func (p policePolicy) CanHandleAlert(a *domain.EmergencyAlert) bool {
	return p.Allowed(ActionHandleAlert) && p.area != nil && p.area.Contains(a.Point)
}

// adminPolicy: no report visibility; may handle any alert.
type adminPolicy struct {
	basePolicy
}

func (adminPolicy) ReportScope() domain.ReportScope { return domain.ReportScope{} }
func (adminPolicy) CanViewReport(*domain.CrimeReport) bool { return false }
func (adminPolicy) CanEditReport(*domain.CrimeReport) bool { return false }
func (p adminPolicy) CanHandleAlert(*domain.EmergencyAlert) bool { return p.Allowed(ActionHandleAlert) }

// ForViewer builds the policy for v. degrees is the half-width of the
// department box.
func ForViewer(v domain.Viewer, authz *Authorizer, degrees float64) Policy {
	base := basePolicy{viewer: v, authz: authz}

	switch v.User.Role {
	case domain.UserRoleCitizen:
		return citizenPolicy{base}
	case domain.UserRolePolice:
		var area *domain.BoundingBox
		if v.Department != nil {
			box := domain.BoxAround(v.Department.Location, degrees)
			area = &box
		}
		return policePolicy{basePolicy: base, area: area}
	case domain.UserRoleAdmin:
		return adminPolicy{base}
	}
	return denyAll{base}
}

// denyAll is used for unknown roles.
type denyAll struct {
	basePolicy
}

func (denyAll) Allowed(Action) bool { return false }
func (denyAll) ReportScope() domain.ReportScope { return domain.ReportScope{} }
func (denyAll) CanViewReport(*domain.CrimeReport) bool { return false }
func (denyAll) CanEditReport(*domain.CrimeReport) bool { return false }
func (denyAll) CanHandleAlert(*domain.EmergencyAlert) bool { return false }
