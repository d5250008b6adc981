package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zgpcy/worktime/internal/convert"
	"github.com/zgpcy/worktime/internal/version"
)

// Metrics holds the widget's counters and the registry they live in
type Metrics struct {
	registry *prometheus.Registry

	conversionsTotal *prometheus.CounterVec
	refreshesTotal   prometheus.Counter
	resetsTotal      *prometheus.CounterVec
	lastRefresh      prometheus.Gauge
	buildInfo        *prometheus.GaugeVec // Build version information
}

// New creates and registers all metrics on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		conversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worktime_conversions_total",
				Help: "Total number of time conversion attempts by outcome",
			},
			[]string{"outcome"},
		),
		refreshesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "worktime_clock_refreshes_total",
				Help: "Total number of clock refresh runs",
			},
		),
		resetsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worktime_resets_total",
				Help: "Total number of auto-resets that cleared the input",
			},
			[]string{"mode"},
		),
		lastRefresh: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "worktime_last_refresh_timestamp_seconds",
				Help: "Unix timestamp of the last clock refresh",
			},
		),
		buildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "worktime_build_info",
				Help: "Build version information",
			},
			[]string{"version", "git_commit", "build_date", "go_version"},
		),
	}

	// Set build info to 1 with version labels
	versionInfo := version.Info()
	m.buildInfo.With(prometheus.Labels{
		"version":    versionInfo["version"],
		"git_commit": versionInfo["git_commit"],
		"build_date": versionInfo["build_date"],
		"go_version": versionInfo["go_version"],
	}).Set(1)

	// Pre-create outcome series so they export as zero
	for _, o := range []convert.Outcome{convert.OutcomeConverted, convert.OutcomeInvalid, convert.OutcomeNone} {
		m.conversionsTotal.WithLabelValues(o.String())
	}

	m.registry.MustRegister(
		m.conversionsTotal,
		m.refreshesTotal,
		m.resetsTotal,
		m.lastRefresh,
		m.buildInfo,
	)
	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveConversion counts one conversion attempt
func (m *Metrics) ObserveConversion(outcome convert.Outcome) {
	m.conversionsTotal.WithLabelValues(outcome.String()).Inc()
}

// ObserveRefresh counts one clock refresh at t
func (m *Metrics) ObserveRefresh(t time.Time) {
	m.refreshesTotal.Inc()
	m.lastRefresh.Set(float64(t.Unix()))
}

// ObserveReset counts one auto-reset firing under the given reset mode
func (m *Metrics) ObserveReset(mode string) {
	m.resetsTotal.WithLabelValues(mode).Inc()
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
