package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleCitizen UserRole = "citizen"
	UserRolePolice  UserRole = "police"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCitizen, UserRolePolice, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsPolice() bool { return r == UserRolePolice }

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// ReportStatus is the lifecycle state of a crime report.
type ReportStatus string

const (
	ReportStatusPending            ReportStatus = "pending"
	ReportStatusUnderInvestigation ReportStatus = "under_investigation"
	ReportStatusResolved           ReportStatus = "resolved"
	ReportStatusRejected           ReportStatus = "rejected"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusUnderInvestigation, ReportStatusResolved, ReportStatusRejected:
		return true
	}
	return false
}

// Display returns the human-readable label for the status.
func (s ReportStatus) Display() string {
	switch s {
	case ReportStatusPending:
		return "Pending"
	case ReportStatusUnderInvestigation:
		return "Under Investigation"
	case ReportStatusResolved:
		return "Resolved"
	case ReportStatusRejected:
		return "Rejected"
	}
	return string(s)
}

// ReportStatuses lists every status in lifecycle order.
func ReportStatuses() []ReportStatus {
	return []ReportStatus{
		ReportStatusPending,
		ReportStatusUnderInvestigation,
		ReportStatusResolved,
		ReportStatusRejected,
	}
}
