package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
	reportsvc "github.com/heartmarshall/crimewatch-backend/internal/service/report"
)

type reportService interface {
	Create(ctx context.Context, input reportsvc.CreateReportInput) (*domain.CrimeReport, error)
	List(ctx context.Context, input reportsvc.ListReportsInput) ([]domain.CrimeReport, error)
	Get(ctx context.Context, id uuid.UUID) (*reportsvc.ReportDetail, error)
	UpdateReport(ctx context.Context, input reportsvc.UpdateReportInput) (*domain.CrimeReport, error)
	StatusHistory(ctx context.Context, id uuid.UUID) ([]domain.StatusUpdate, error)
	Assign(ctx context.Context, input reportsvc.AssignInput) (*reportsvc.AssignResult, error)
}

type statsService interface {
	Get(ctx context.Context) (domain.ReportStats, error)
}

// ReportHandler serves report submission, listing, updates, team
// assignment and statistics.
type ReportHandler struct {
	reports reportService
	stats   statsService
	log     *slog.Logger
}

func NewReportHandler(reports reportService, stats statsService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, stats: stats, log: logger.With("handler", "report")}
}

type createReportRequest struct {
	CrimeType    *uuid.UUID `json:"crime_type"`
	Title        string     `json:"title"`
	Details      string     `json:"details"`
	Location     string     `json:"location"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	Image        *string    `json:"image"`
	ContactName  *string    `json:"contact_name"`
	ContactEmail *string    `json:"contact_email"`
	ContactPhone *string    `json:"contact_phone"`
}

// updateReportRequest: "crime_type": null clears the crime type and
// "image": "" removes the image.
type updateReportRequest struct {
	CrimeType nullable[uuid.UUID]  `json:"crime_type"`
	Title     *string              `json:"title"`
	Details   *string              `json:"details"`
	Location  *string              `json:"location"`
	Latitude  *float64             `json:"latitude"`
	Longitude *float64             `json:"longitude"`
	Image     *string              `json:"image"`
	Status    *domain.ReportStatus `json:"status"`
	Notes     string               `json:"notes"`
}

type assignRequest struct {
	CrimeReport uuid.UUID `json:"crime_report"`
	Team        uuid.UUID `json:"team"`
	Notes       string    `json:"notes"`
}

// Create handles POST /reports.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
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

	rep, err := h.reports.Create(r.Context(), reportsvc.CreateReportInput{
		CrimeTypeID:  req.CrimeType,
		Title:        req.Title,
		Details:      req.Details,
		Location:     req.Location,
		Point:        domain.Point{Lat: *req.Latitude, Lon: *req.Longitude},
		ImageRef:     req.Image,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(rep))
}

// List handles GET /reports/list.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	reports, err := h.reports.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(reports, func(rep domain.CrimeReport) reportResponse {
		return toReportResponse(&rep)
	}))
}

func listInputFromQuery(r *http.Request) (reportsvc.ListReportsInput, error) {
	q := r.URL.Query()
	var (
		input reportsvc.ListReportsInput
		errs  []domain.FieldError
	)

	if v := q.Get("status"); v != "" {
		status := domain.ReportStatus(v)
		input.Status = &status
	}
	if v := q.Get("crime_type"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "crime_type", Message: "invalid id"})
		} else {
			input.CrimeTypeID = &id
		}
	}
	if v := q.Get("search"); v != "" {
		input.Search = &v
	}
	input.Ordering = domain.ReportOrdering(q.Get("ordering"))

	limit, ferr := intQuery(r, "limit")
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	offset, ferr := intQuery(r, "offset")
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	input.Limit = limit
	input.Offset = offset

	return input, domain.NewValidationErrors(errs)
}

// Get handles GET /reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.reports.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, reportDetailResponse{
		reportResponse: toReportResponse(detail.Report),
		Assignments:    mapSlice(detail.Assignments, toAssignmentResponse),
	})
}

// Update handles PUT /reports/{id}. Omitted fields keep their values.
func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req updateReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := reportsvc.UpdateReportInput{
		ReportID:       id,
		Title:          req.Title,
		Details:        req.Details,
		Location:       req.Location,
		CrimeTypeID:    req.CrimeType.Value,
		ClearCrimeType: req.CrimeType.Set && req.CrimeType.Value == nil,
		ImageRef:       req.Image,
		Status:         req.Status,
		Notes:          req.Notes,
	}

	switch {
	case req.Latitude != nil && req.Longitude != nil:
		input.Point = &domain.Point{Lat: *req.Latitude, Lon: *req.Longitude}
	case req.Latitude != nil || req.Longitude != nil:
		handleError(w, r, h.log, domain.NewValidationError("latitude", "latitude and longitude must be sent together"))
		return
	}

	rep, err := h.reports.UpdateReport(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// StatusUpdates handles GET /reports/{id}/status-updates, newest first.
func (h *ReportHandler) StatusUpdates(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	updates, err := h.reports.StatusHistory(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(updates, toStatusUpdateResponse))
}

// Assign handles POST /assignments.
func (h *ReportHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.reports.Assign(r.Context(), reportsvc.AssignInput{
		ReportID: req.CrimeReport,
		TeamID:   req.Team,
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := assignResponse{
		Assignment: toAssignmentResponse(*result.Assignment),
		Report:     toReportResponse(result.Report),
	}
	if result.StatusUpdate != nil {
		su := toStatusUpdateResponse(*result.StatusUpdate)
		resp.StatusUpdate = &su
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Stats handles GET /stats.
func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Get(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}
