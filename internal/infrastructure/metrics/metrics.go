package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EditorMetrics exposes counters/histograms for the appointment editor
type EditorMetrics struct {
	savesTotal       *prometheus.CounterVec
	saveLatency      prometheus.Histogram
	evaluationsTotal *prometheus.CounterVec
	gatherer         prometheus.Gatherer
}

// NewEditorMetrics registers the editor collectors on reg. A nil reg uses a
// fresh registry so repeated construction in tests does not panic.
func NewEditorMetrics(reg *prometheus.Registry) *EditorMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &EditorMetrics{
		savesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "appointment_editor",
			Name:      "saves_total",
			Help:      "Appointment save attempts by outcome",
		}, []string{"status"}),
		saveLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "appointment_editor",
			Name:      "save_latency_seconds",
			Help:      "Latency of appointment saves against the appointments API",
			Buckets:   prometheus.DefBuckets,
		}),
		evaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "appointment_editor",
			Name:      "disable_status_evaluations_total",
			Help:      "Disable-status computations by snapshot source",
		}, []string{"source"}),
		gatherer: reg,
	}
	reg.MustRegister(m.savesTotal, m.saveLatency, m.evaluationsTotal)
	return m
}

func (m *EditorMetrics) ObserveSave(status string, seconds float64) {
	if m == nil {
		return
	}
	m.savesTotal.WithLabelValues(status).Inc()
	m.saveLatency.Observe(seconds)
}

func (m *EditorMetrics) ObserveEvaluation(source string) {
	if m == nil {
		return
	}
	m.evaluationsTotal.WithLabelValues(source).Inc()
}

// Handler serves the registry in the Prometheus text format
func (m *EditorMetrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
