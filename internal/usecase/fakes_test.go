package usecase

import (
	"context"
	"io"
	"sync"
	"testing"

	"appointment-editor/internal/delivery/http/middleware"
	"appointment-editor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func contextWithUser(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

type fakeAppointmentRepo struct {
	saved   []*entity.AppointmentRequest
	saveErr error
	created *entity.Appointment

	appointments map[string]*entity.Appointment
	findErr      error
}

func (f *fakeAppointmentRepo) Save(ctx context.Context, req *entity.AppointmentRequest) (*entity.Appointment, error) {
	f.saved = append(f.saved, req)
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return f.created, nil
}

func (f *fakeAppointmentRepo) FindByUUID(ctx context.Context, appointmentUUID string) (*entity.Appointment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	appointment, ok := f.appointments[appointmentUUID]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

type auditEntry struct {
	action   string
	entityID string
	userID   *uuid.UUID
	cause    error
}

type fakeAuditService struct {
	mu      sync.Mutex
	entries []auditEntry
	err     error
}

func (f *fakeAuditService) record(e auditEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
	return f.err
}

func (f *fakeAuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityID string, newValue interface{}) error {
	return f.record(auditEntry{action: action, entityID: entityID, userID: userID})
}

func (f *fakeAuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityID string, oldValue interface{}) error {
	return f.record(auditEntry{action: action, entityID: entityID, userID: userID})
}

func (f *fakeAuditService) LogFailure(ctx context.Context, userID *uuid.UUID, action string, entityID string, value interface{}, cause error) error {
	return f.record(auditEntry{action: action, entityID: entityID, userID: userID, cause: cause})
}

func (f *fakeAuditService) actions(t *testing.T) []string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	actions := make([]string, len(f.entries))
	for i, e := range f.entries {
		actions[i] = e.action
	}
	return actions
}
