package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"appointment-editor/internal/delivery/http/middleware"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(allowedOrigins []string) http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)

	router := NewRouter(log, nil, nil, nil, nil, http.NotFoundHandler(), nil, middleware.NewCORSMiddleware(allowedOrigins))
	return router.Setup()
}

func TestRouter_PreflightReachesCORS(t *testing.T) {
	router := newTestRouter([]string{"https://clinic.example"})

	tests := []struct {
		name   string
		path   string
		method string
	}{
		{"change draft field", "/api/v1/editor/drafts/x/fields/patient", http.MethodPut},
		{"discard draft", "/api/v1/editor/drafts/x", http.MethodDelete},
		{"evaluate disable status", "/api/v1/appointments/disable-status", http.MethodPost},
		{"logout", "/api/v1/auth/logout", http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, tt.path, nil)
			req.Header.Set("Origin", "https://clinic.example")
			req.Header.Set("Access-Control-Request-Method", tt.method)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "https://clinic.example", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), tt.method)
		})
	}
}

func TestRouter_HealthCarriesCORSHeaders(t *testing.T) {
	router := newTestRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_WrongMethodStillRejected(t *testing.T) {
	router := newTestRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
