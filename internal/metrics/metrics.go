// Package metrics holds the Prometheus collectors of the service.
// All methods are safe on a nil *Metrics and then do nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// Metrics holds HTTP, database and domain collectors registered on a
// private registry.
type Metrics struct {
	registry *prometheus.Registry

	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight *prometheus.GaugeVec
	DBConnPoolStats  *prometheus.GaugeVec

	ReportsFiled      prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	TeamAssignments   prometheus.Counter
	AlertsRaised      prometheus.Counter
	AlertsHandled     prometheus.Counter
}

// New creates the collectors under namespace.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),
		DBConnPoolStats: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "connection_pool",
				Help:      "Database connection pool statistics",
			},
			[]string{"stat"},
		),
		ReportsFiled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_filed_total",
			Help:      "Crime reports submitted by citizens",
		}),
		StatusTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_status_transitions_total",
				Help:      "Audited report status changes",
			},
			[]string{"from", "to"},
		),
		TeamAssignments: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "team_assignments_total",
			Help:      "Reports assigned to police teams",
		}),
		AlertsRaised: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emergency_alerts_raised_total",
			Help:      "Emergency alerts submitted",
		}),
		AlertsHandled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emergency_alerts_handled_total",
			Help:      "Emergency alert handle operations",
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RequestStarted increments the in-flight gauge and returns its decrement.
func (m *Metrics) RequestStarted(method string) func() {
	if m == nil {
		return func() {}
	}
	g := m.RequestsInFlight.WithLabelValues(method)
	g.Inc()
	return g.Dec
}

// RecordDBPoolStats copies pgx pool statistics into the pool gauge.
func (m *Metrics) RecordDBPoolStats(s *pgxpool.Stat) {
	if m == nil || s == nil {
		return
	}
	m.DBConnPoolStats.WithLabelValues("total").Set(float64(s.TotalConns()))
	m.DBConnPoolStats.WithLabelValues("acquired").Set(float64(s.AcquiredConns()))
	m.DBConnPoolStats.WithLabelValues("idle").Set(float64(s.IdleConns()))
	m.DBConnPoolStats.WithLabelValues("max").Set(float64(s.MaxConns()))
	m.DBConnPoolStats.WithLabelValues("empty_acquire_count").Set(float64(s.EmptyAcquireCount()))
	m.DBConnPoolStats.WithLabelValues("acquire_duration_ms").Set(float64(s.AcquireDuration().Milliseconds()))
}

func (m *Metrics) ReportFiled() {
	if m == nil {
		return
	}
	m.ReportsFiled.Inc()
}

func (m *Metrics) StatusChanged(from, to domain.ReportStatus) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(string(from), string(to)).Inc()
}

func (m *Metrics) TeamAssigned() {
	if m == nil {
		return
	}
	m.TeamAssignments.Inc()
}

func (m *Metrics) AlertRaised() {
	if m == nil {
		return
	}
	m.AlertsRaised.Inc()
}

func (m *Metrics) AlertHandled() {
	if m == nil {
		return
	}
	m.AlertsHandled.Inc()
}
