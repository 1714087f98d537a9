package http

import (
	"net/http"

	"appointment-editor/internal/delivery/http/handler"
	"appointment-editor/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router             *mux.Router
	log                *logrus.Logger
	editorHandler      *handler.EditorHandler
	appointmentHandler *handler.AppointmentHandler
	auditLogHandler    *handler.AuditLogHandler
	sessionHandler     *handler.SessionHandler
	metricsHandler     http.Handler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	log *logrus.Logger,
	editorHandler *handler.EditorHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	sessionHandler *handler.SessionHandler,
	metricsHandler http.Handler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		log:                log,
		editorHandler:      editorHandler,
		appointmentHandler: appointmentHandler,
		auditLogHandler:    auditLogHandler,
		sessionHandler:     sessionHandler,
		metricsHandler:     metricsHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Browser preflights; must match before the method-restricted routes
	r.router.Methods(http.MethodOptions).HandlerFunc(r.preflight)

	// Prometheus scrape endpoint
	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Session routes (protected)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(r.authMiddleware.Authenticate)
	auth.HandleFunc("/me", r.sessionHandler.GetCurrentUser).Methods(http.MethodGet)
	auth.HandleFunc("/logout", r.sessionHandler.Logout).Methods(http.MethodPost)

	// Editor routes (protected - scheduling roles)
	editor := api.PathPrefix("/editor").Subrouter()
	editor.Use(r.authMiddleware.Authenticate)
	editor.Use(middleware.RequireScheduler)
	editor.HandleFunc("/config", r.editorHandler.GetConfig).Methods(http.MethodGet)
	editor.HandleFunc("/drafts", r.editorHandler.StartDraft).Methods(http.MethodPost)
	editor.HandleFunc("/drafts/{id}", r.editorHandler.GetDraft).Methods(http.MethodGet)
	editor.HandleFunc("/drafts/{id}", r.editorHandler.DiscardDraft).Methods(http.MethodDelete)
	editor.HandleFunc("/drafts/{id}/fields/{field}", r.editorHandler.ChangeField).Methods(http.MethodPut)
	editor.HandleFunc("/drafts/{id}/payload", r.editorHandler.GetPayload).Methods(http.MethodGet)
	editor.HandleFunc("/drafts/{id}/save", r.editorHandler.Save).Methods(http.MethodPost)

	// Edit form routes (protected - scheduling roles)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Use(middleware.RequireScheduler)
	appointments.HandleFunc("/disable-status", r.appointmentHandler.EvaluateDisableStatus).Methods(http.MethodPost)
	appointments.HandleFunc("/{uuid}/disable-status", r.appointmentHandler.GetDisableStatus).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(middleware.RequestLogger(r.log))
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// preflight is reached only through the CORS middleware, which answers it
func (r *Router) preflight(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
