package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/crimewatch-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Reports   *ReportHandler
	Emergency *EmergencyHandler
	Directory *DirectoryHandler
	// Metrics serves the Prometheus scrape endpoint. Nil leaves /metrics
	// unmounted.
	Metrics http.Handler
}

// Middlewares are the cross-cutting layers of the router. Global runs on
// every request, outermost first. AuthLimit and AlertLimit guard the
// unauthenticated endpoints; nil entries are skipped.
type Middlewares struct {
	Global     []middleware.Middleware
	AuthLimit  middleware.Middleware
	AlertLimit middleware.Middleware
}

// NewRouter builds the chi router serving the API under /api and the
// operational endpoints at the root.
func NewRouter(h Handlers, mw Middlewares) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(mw.Global...))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Group(func(open chi.Router) {
				open.Use(middleware.Chain(mw.AuthLimit))
				open.Post("/register", h.Auth.Register)
				open.Post("/login", h.Auth.Login)
				open.Post("/refresh", h.Auth.Refresh)
			})
			ar.Group(func(priv chi.Router) {
				priv.Use(middleware.RequireAuth)
				priv.Post("/logout", h.Auth.Logout)
				priv.Get("/profile", h.Auth.Profile)
				priv.Put("/profile", h.Auth.UpdateProfile)
			})
		})

		api.Route("/emergency", func(er chi.Router) {
			er.With(middleware.Chain(mw.AlertLimit)).Post("/alert", h.Emergency.Raise)
			er.Group(func(priv chi.Router) {
				priv.Use(middleware.RequireAuth)
				priv.Get("/alerts", h.Emergency.List)
				priv.Patch("/alerts/{id}/handle", h.Emergency.Handle)
			})
		})

		api.Group(func(priv chi.Router) {
			priv.Use(middleware.RequireAuth)

			priv.Route("/reports", func(rr chi.Router) {
				rr.Get("/crime-types", h.Directory.CrimeTypes)
				rr.Post("/", h.Reports.Create)
				rr.Get("/list", h.Reports.List)
				rr.Get("/{id}", h.Reports.Get)
				rr.Put("/{id}", h.Reports.Update)
				rr.Get("/{id}/status-updates", h.Reports.StatusUpdates)
			})

			priv.Get("/departments", h.Directory.Departments)
			priv.Get("/teams", h.Directory.Teams)
			priv.Post("/assignments", h.Reports.Assign)
			priv.Get("/stats", h.Reports.Stats)
		})
	})

	return r
}
