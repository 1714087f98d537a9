package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorMetricsObserve(t *testing.T) {
	m := NewEditorMetrics(nil)
	m.ObserveSave("success", 0.2)
	m.ObserveSave("failed", 0.4)
	m.ObserveSave("success", 0.1)
	m.ObserveEvaluation("remote")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.savesTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.savesTotal.WithLabelValues("failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.evaluationsTotal.WithLabelValues("remote")))
}

func TestEditorMetricsCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewEditorMetrics(reg)
	m.ObserveEvaluation("inline")

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestEditorMetricsNilSafe(t *testing.T) {
	var m *EditorMetrics
	m.ObserveSave("success", 0.1)
	m.ObserveEvaluation("inline")
	assert.NotNil(t, m.Handler())
}

func TestEditorMetricsHandler(t *testing.T) {
	m := NewEditorMetrics(nil)
	m.ObserveSave("success", 0.3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "appointment_editor_saves_total")
}
