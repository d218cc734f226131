package report

import "github.com/heartmarshall/crimewatch-backend/internal/domain"

// ReportDetail is a report with its assignment history.
type ReportDetail struct {
	Report      *domain.CrimeReport
	Assignments []domain.CrimeAssignment
}

// AssignResult describes the outcome of an assignment.
type AssignResult struct {
	Assignment *domain.CrimeAssignment
	Report     *domain.CrimeReport
	// StatusUpdate is set when the assignment moved the report out of
	// pending.
	StatusUpdate *domain.StatusUpdate
}
