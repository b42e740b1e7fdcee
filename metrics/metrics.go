// Package metrics exposes the prometheus collectors of the portal
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// sync outcomes
const (
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

var (
	// Registry holds the portal collectors
	Registry = prometheus.NewRegistry()

	applicationSyncs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apicportal",
			Subsystem: "applications",
			Name:      "sync_total",
			Help:      "Total number of application synchronizations by outcome.",
		},
		[]string{"outcome"},
	)

	applicationDeletions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apicportal",
			Subsystem: "applications",
			Name:      "deletions_total",
			Help:      "Total number of deleted applications by trigger event.",
		},
		[]string{"event"},
	)

	moduleRemovals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apicportal",
			Subsystem: "modules",
			Name:      "removals_total",
			Help:      "Total number of custom module removal confirmations.",
		},
		[]string{"success"},
	)

	passwordChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apicportal",
			Subsystem: "users",
			Name:      "password_changes_total",
			Help:      "Total number of password change submissions.",
		},
		[]string{"success"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apicportal",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "apicportal",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)
)

func init() {
	Registry.MustRegister(
		applicationSyncs,
		applicationDeletions,
		moduleRemovals,
		passwordChanges,
		httpRequests,
		httpDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns the handler serving the registered collectors
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordSync counts an application synchronization
func RecordSync(outcome string) {
	applicationSyncs.WithLabelValues(outcome).Inc()
}

// RecordDeletion counts a deleted application
func RecordDeletion(event string) {
	if event == "" {
		event = "unknown"
	}
	applicationDeletions.WithLabelValues(event).Inc()
}

// RecordModuleRemoval counts a confirmed module removal
func RecordModuleRemoval(success bool) {
	moduleRemovals.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// RecordPasswordChange counts a password change submission
func RecordPasswordChange(success bool) {
	passwordChanges.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// InstrumentHandler records request counts and durations labeled by the matched chi route
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
