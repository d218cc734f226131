package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type requestObserver interface {
	RequestStarted(method string) func()
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics records request count, latency and in-flight requests labelled by
// the chi route pattern, so ids in the path do not explode cardinality.
func Metrics(obs requestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := obs.RequestStarted(r.Method)
			defer done()

			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			obs.ObserveRequest(r.Method, routePattern(r), sw.status, time.Since(start))
		})
	}
}

// routePattern returns the matched chi pattern. It is only complete after
// the router has served the request.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return "unmatched"
}
