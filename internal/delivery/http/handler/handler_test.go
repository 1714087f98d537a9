package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"appointment-editor/internal/delivery/dto"
	"appointment-editor/internal/domain/entity"
	"appointment-editor/internal/infrastructure/appointmentsapi"
	"appointment-editor/internal/usecase"
	"appointment-editor/pkg/response"
	"appointment-editor/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEditorUsecase struct {
	err         error
	changedWith entity.DraftField
	draft       *dto.DraftResponse
}

func (s *stubEditorUsecase) StartDraft(ctx context.Context) (*dto.DraftResponse, error) {
	return s.draft, s.err
}

func (s *stubEditorUsecase) GetDraft(ctx context.Context, draftID uuid.UUID) (*dto.DraftResponse, error) {
	return s.draft, s.err
}

func (s *stubEditorUsecase) ChangeField(ctx context.Context, draftID uuid.UUID, field entity.DraftField, req *dto.FieldChangeRequest) (*dto.DraftResponse, error) {
	s.changedWith = field
	return s.draft, s.err
}

func (s *stubEditorUsecase) DiscardDraft(ctx context.Context, draftID uuid.UUID) error {
	return s.err
}

func (s *stubEditorUsecase) GetPayload(ctx context.Context, draftID uuid.UUID) (*entity.AppointmentRequest, error) {
	return &entity.AppointmentRequest{PatientUUID: "patient-1"}, s.err
}

func (s *stubEditorUsecase) CheckAndSave(ctx context.Context, draftID uuid.UUID) (*dto.SaveResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SaveResponse{DraftID: draftID}, nil
}

func (s *stubEditorUsecase) GetConfig(ctx context.Context) *dto.EditorConfigResponse {
	return &dto.EditorConfigResponse{EnableSpecialities: true}
}

func editorRouter(stub *stubEditorUsecase) *mux.Router {
	h := NewEditorHandler(stub, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/drafts", h.StartDraft).Methods(http.MethodPost)
	r.HandleFunc("/drafts/{id}", h.GetDraft).Methods(http.MethodGet)
	r.HandleFunc("/drafts/{id}", h.DiscardDraft).Methods(http.MethodDelete)
	r.HandleFunc("/drafts/{id}/fields/{field}", h.ChangeField).Methods(http.MethodPut)
	r.HandleFunc("/drafts/{id}/payload", h.GetPayload).Methods(http.MethodGet)
	r.HandleFunc("/drafts/{id}/save", h.Save).Methods(http.MethodPost)
	r.HandleFunc("/config", h.GetConfig).Methods(http.MethodGet)
	return r
}

func serve(router http.Handler, method, target, body string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp response.Response
	json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestEditorHandler_StartDraft(t *testing.T) {
	stub := &stubEditorUsecase{draft: &dto.DraftResponse{ID: uuid.New()}}

	rec, resp := serve(editorRouter(stub), http.MethodPost, "/drafts", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
}

func TestEditorHandler_ChangeField(t *testing.T) {
	stub := &stubEditorUsecase{draft: &dto.DraftResponse{}}
	target := fmt.Sprintf("/drafts/%s/fields/startTime", uuid.New())

	rec, _ := serve(editorRouter(stub), http.MethodPut, target, `{"value":"10:00"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.DraftFieldStartTime, stub.changedWith)
}

func TestEditorHandler_ChangeFieldInvalidProviders(t *testing.T) {
	stub := &stubEditorUsecase{}
	target := fmt.Sprintf("/drafts/%s/fields/providers", uuid.New())

	rec, resp := serve(editorRouter(stub), http.MethodPut, target, `{"providers":[{"label":"Dr. Neha"}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Empty(t, stub.changedWith)
}

func TestEditorHandler_ChangeFieldRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		field string
		body  string
		want  string
	}{
		{"startTime", `{"value":"25:99"}`, "startTime must be a time of day like 09:30 or 9:30 am"},
		{"endTime", `{"value":"soon"}`, "endTime must be a time of day like 09:30 or 9:30 am"},
		{"startDate", `{"value":"11/10/2019"}`, "startDate must be a date like 2019-10-11"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			stub := &stubEditorUsecase{}
			target := fmt.Sprintf("/drafts/%s/fields/%s", uuid.New(), tt.field)

			rec, resp := serve(editorRouter(stub), http.MethodPut, target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, map[string]interface{}{tt.field: tt.want}, resp.Error)
			assert.Empty(t, stub.changedWith)
		})
	}
}

func TestEditorHandler_ChangeFieldEmptyValueClears(t *testing.T) {
	stub := &stubEditorUsecase{draft: &dto.DraftResponse{}}
	target := fmt.Sprintf("/drafts/%s/fields/startDate", uuid.New())

	rec, _ := serve(editorRouter(stub), http.MethodPut, target, `{"value":""}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.DraftFieldStartDate, stub.changedWith)
}

func TestEditorHandler_InvalidDraftID(t *testing.T) {
	rec, resp := serve(editorRouter(&stubEditorUsecase{}), http.MethodGet, "/drafts/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid draft ID", resp.Message)
}

func TestEditorHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{usecase.ErrDraftNotFound, http.StatusNotFound},
		{usecase.ErrDraftNotOwned, http.StatusForbidden},
		{usecase.ErrUserNotInContext, http.StatusUnauthorized},
		{usecase.ErrSpecialitiesDisabled, http.StatusBadRequest},
		{fmt.Errorf("%w: patient", usecase.ErrIncompleteDraft), http.StatusBadRequest},
		{usecase.ErrInvalidTimeRange, http.StatusBadRequest},
		{fmt.Errorf("save appointment: %w", &appointmentsapi.APIError{StatusCode: 409, Message: "overbooked"}), http.StatusBadGateway},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			stub := &stubEditorUsecase{err: tt.err}
			rec, resp := serve(editorRouter(stub), http.MethodPost, fmt.Sprintf("/drafts/%s/save", uuid.New()), "")

			assert.Equal(t, tt.want, rec.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestEditorHandler_BadGatewayCarriesUpstreamMessage(t *testing.T) {
	stub := &stubEditorUsecase{err: &appointmentsapi.APIError{StatusCode: 400, Message: "Patient is required"}}

	_, resp := serve(editorRouter(stub), http.MethodPost, fmt.Sprintf("/drafts/%s/save", uuid.New()), "")

	assert.Equal(t, "Patient is required", resp.Error)
}

func TestEditorHandler_GetConfig(t *testing.T) {
	rec, resp := serve(editorRouter(&stubEditorUsecase{}), http.MethodGet, "/config", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]interface{}{"enableSpecialities": true, "isServiceOnAppointmentEditable": false}, resp.Data)
}

type stubEditUsecase struct {
	err      error
	received *dto.DisableStatusRequest
}

func (s *stubEditUsecase) GetDisableStatus(ctx context.Context, appointmentUUID string) (*dto.DisableStatusResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.DisableStatusResponse{AppointmentUUID: appointmentUUID}, nil
}

func (s *stubEditUsecase) EvaluateDisableStatus(ctx context.Context, req *dto.DisableStatusRequest) *dto.DisableStatusResponse {
	s.received = req
	return &dto.DisableStatusResponse{Status: req.Status, EvaluatedAt: time.Now()}
}

func appointmentRouter(stub *stubEditUsecase) *mux.Router {
	h := NewAppointmentHandler(stub, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/appointments/disable-status", h.EvaluateDisableStatus).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{uuid}/disable-status", h.GetDisableStatus).Methods(http.MethodGet)
	return r
}

func TestAppointmentHandler_GetDisableStatus(t *testing.T) {
	appointmentUUID := uuid.NewString()

	rec, _ := serve(appointmentRouter(&stubEditUsecase{}), http.MethodGet, "/appointments/"+appointmentUUID+"/disable-status", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(appointmentRouter(&stubEditUsecase{}), http.MethodGet, "/appointments/abc/disable-status", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(appointmentRouter(&stubEditUsecase{err: usecase.ErrAppointmentNotFound}), http.MethodGet, "/appointments/"+appointmentUUID+"/disable-status", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = serve(appointmentRouter(&stubEditUsecase{err: &appointmentsapi.APIError{StatusCode: 500, Message: "boom"}}), http.MethodGet, "/appointments/"+appointmentUUID+"/disable-status", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAppointmentHandler_EvaluateDisableStatus(t *testing.T) {
	stub := &stubEditUsecase{}

	rec, _ := serve(appointmentRouter(stub), http.MethodPost, "/appointments/disable-status",
		`{"status":"CheckedIn","startDateTime":"2019-10-11T04:30:00Z","isServiceOnAppointmentEditable":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.received)
	assert.Equal(t, "CheckedIn", stub.received.Status)
	require.NotNil(t, stub.received.IsServiceOnAppointmentEditable)
	assert.True(t, *stub.received.IsServiceOnAppointmentEditable)
	assert.Equal(t, time.Date(2019, 10, 11, 4, 30, 0, 0, time.UTC), stub.received.StartDateTime.Time.UTC())
}

func TestAppointmentHandler_EvaluateDisableStatusEpochMillis(t *testing.T) {
	stub := &stubEditUsecase{}

	rec, _ := serve(appointmentRouter(stub), http.MethodPost, "/appointments/disable-status",
		`{"status":"CheckedIn","startDateTime":1174166254}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.received.StartDateTime.Time)
	assert.Equal(t, time.UnixMilli(1174166254).UTC(), *stub.received.StartDateTime.Time)
}

func TestAppointmentHandler_EvaluateDisableStatusMissingStatus(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	editUsecase := usecase.NewAppointmentEditUsecase(log, nil, nil, entity.AppConfig{IsServiceOnAppointmentEditable: true}, func() time.Time {
		return time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	h := NewAppointmentHandler(editUsecase, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/appointments/disable-status", h.EvaluateDisableStatus).Methods(http.MethodPost)

	rec, resp := serve(r, http.MethodPost, "/appointments/disable-status", `{"startDateTime":"2007-01-14T14:22:46Z"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	components, ok := data["components"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, components, 9)
	for name, disabled := range components {
		assert.Equal(t, true, disabled, name)
	}
}

func TestAppointmentHandler_EvaluateDisableStatusBadTimestamp(t *testing.T) {
	rec, _ := serve(appointmentRouter(&stubEditUsecase{}), http.MethodPost, "/appointments/disable-status",
		`{"status":"Scheduled","startDateTime":"yesterday"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type stubAuditLogUsecase struct {
	received *dto.AuditLogListRequest
}

func (s *stubAuditLogUsecase) GetAllAuditLogs(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogListResponse, error) {
	s.received = req
	return &dto.AuditLogListResponse{Logs: []dto.AuditLogResponse{{ID: 1}}, Total: 41}, nil
}

func (s *stubAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	if id != 1 {
		return nil, usecase.ErrAuditLogNotFound
	}
	return &dto.AuditLogResponse{ID: id}, nil
}

func auditRouter(stub *stubAuditLogUsecase) *mux.Router {
	h := NewAuditLogHandler(stub, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/audit-logs", h.GetAllAuditLogs).Methods(http.MethodGet)
	r.HandleFunc("/audit-logs/{id}", h.GetAuditLog).Methods(http.MethodGet)
	return r
}

func TestAuditLogHandler_List(t *testing.T) {
	stub := &stubAuditLogUsecase{}

	rec, resp := serve(auditRouter(stub), http.MethodGet, "/audit-logs?action=appointment.save&limit=20", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &dto.AuditLogListRequest{Action: "appointment.save", Page: 1, Limit: 20}, stub.received)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Equal(t, int64(41), resp.Meta.Total)
}

func TestAuditLogHandler_ListRejectsBadPaging(t *testing.T) {
	stub := &stubAuditLogUsecase{}

	rec, _ := serve(auditRouter(stub), http.MethodGet, "/audit-logs?limit=1000", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(auditRouter(stub), http.MethodGet, "/audit-logs?page=first", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.received)
}

func TestAuditLogHandler_Get(t *testing.T) {
	rec, _ := serve(auditRouter(&stubAuditLogUsecase{}), http.MethodGet, "/audit-logs/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(auditRouter(&stubAuditLogUsecase{}), http.MethodGet, "/audit-logs/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = serve(auditRouter(&stubAuditLogUsecase{}), http.MethodGet, "/audit-logs/x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
