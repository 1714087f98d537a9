package repository

import (
	"context"
	"errors"

	"appointment-editor/internal/domain/entity"
)

// ErrAppointmentNotFound is returned when the store has no appointment for a uuid
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository is the external store that owns appointments
type AppointmentRepository interface {
	Save(ctx context.Context, req *entity.AppointmentRequest) (*entity.Appointment, error)
	FindByUUID(ctx context.Context, appointmentUUID string) (*entity.Appointment, error)
}
