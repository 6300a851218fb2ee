// Package metrics exposes Prometheus metrics for the portfolio sections.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

// Recorder owns the portfolio metrics on a private registry.
type Recorder struct {
	registry         *prometheus.Registry
	sectionReveals   *prometheus.CounterVec
	filterSelections *prometheus.CounterVec
	projectDetails   *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	activeSessions   prometheus.Gauge
}

// New registers the metrics on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sectionReveals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_reveals_total",
			Help:      "Sections that scrolled into view, once per visitor.",
		}, []string{"section"}),
		filterSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_selections_total",
			Help:      "Category filter selections.",
		}, []string{"section", "category"}),
		projectDetails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "project_details_total",
			Help:      "Project detail dialogs opened.",
		}, []string{"project"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Visitors with live section state.",
		}),
	}
	r.registry.MustRegister(
		r.sectionReveals,
		r.filterSelections,
		r.projectDetails,
		r.requestDuration,
		r.activeSessions,
	)
	return r
}

func (r *Recorder) SectionRevealed(section string) {
	r.sectionReveals.WithLabelValues(section).Inc()
}

// FilterSelected counts a filter click. Labels outside the section's
// category set are counted under "other" to keep cardinality bounded.
func (r *Recorder) FilterSelected(section, category string, known bool) {
	if !known {
		category = "other"
	}
	r.filterSelections.WithLabelValues(section, category).Inc()
}

func (r *Recorder) ProjectOpened(id int) {
	r.projectDetails.WithLabelValues(strconv.Itoa(id)).Inc()
}

// SetSessions records the number of live visitor sessions.
func (r *Recorder) SetSessions(n int) {
	r.activeSessions.Set(float64(n))
}

// Middleware times every request by route template.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.requestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
