package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

type directoryService interface {
	Departments(ctx context.Context) ([]domain.PoliceDepartment, error)
	CrimeTypes(ctx context.Context) ([]domain.CrimeType, error)
	Teams(ctx context.Context) ([]domain.PoliceTeam, error)
}

// DirectoryHandler serves reference lists: departments, crime types and
// teams.
type DirectoryHandler struct {
	svc directoryService
	log *slog.Logger
}

func NewDirectoryHandler(svc directoryService, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{svc: svc, log: logger.With("handler", "directory")}
}

// Departments handles GET /departments.
func (h *DirectoryHandler) Departments(w http.ResponseWriter, r *http.Request) {
	depts, err := h.svc.Departments(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(depts, toDepartmentResponse))
}

// CrimeTypes handles GET /reports/crime-types.
func (h *DirectoryHandler) CrimeTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.CrimeTypes(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(types, toCrimeTypeResponse))
}

// Teams handles GET /teams. Only police officers see their department's
// teams; everyone else gets an empty list.
func (h *DirectoryHandler) Teams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.svc.Teams(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(teams, toTeamResponse))
}
