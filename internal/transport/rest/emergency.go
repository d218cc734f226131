package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
	emergencysvc "github.com/heartmarshall/crimewatch-backend/internal/service/emergency"
)

type alertService interface {
	Raise(ctx context.Context, input emergencysvc.RaiseInput) (*domain.EmergencyAlert, error)
	ListUnhandled(ctx context.Context) ([]domain.EmergencyAlert, error)
	Handle(ctx context.Context, input emergencysvc.HandleInput) (*domain.EmergencyAlert, error)
}

// EmergencyHandler serves the emergency alert endpoints.
type EmergencyHandler struct {
	alerts alertService
	log    *slog.Logger
}

func NewEmergencyHandler(alerts alertService, logger *slog.Logger) *EmergencyHandler {
	return &EmergencyHandler{alerts: alerts, log: logger.With("handler", "emergency")}
}

type raiseAlertRequest struct {
	Phone     string   `json:"phone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     string   `json:"notes"`
}

type handleAlertRequest struct {
	Notes string `json:"notes"`
}

// Raise handles POST /emergency/alert. No authentication is required.
func (h *EmergencyHandler) Raise(w http.ResponseWriter, r *http.Request) {
	var req raiseAlertRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var missing []domain.FieldError
	if req.Latitude == nil {
		missing = append(missing, domain.FieldError{Field: "latitude", Message: "required"})
	}
	if req.Longitude == nil {
		missing = append(missing, domain.FieldError{Field: "longitude", Message: "required"})
	}
	if err := domain.NewValidationErrors(missing); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	alert, err := h.alerts.Raise(r.Context(), emergencysvc.RaiseInput{
		Phone: req.Phone,
		Point: domain.Point{Lat: *req.Latitude, Lon: *req.Longitude},
		Notes: req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAlertResponse(alert))
}

// List handles GET /emergency/alerts.
func (h *EmergencyHandler) List(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alerts.ListUnhandled(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(alerts, func(a domain.EmergencyAlert) alertResponse {
		return toAlertResponse(&a)
	}))
}

// Handle handles PATCH /emergency/alerts/{id}/handle. The body is optional.
func (h *EmergencyHandler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req handleAlertRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	alert, err := h.alerts.Handle(r.Context(), emergencysvc.HandleInput{AlertID: id, Notes: req.Notes})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAlertResponse(alert))
}
