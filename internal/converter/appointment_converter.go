package converter

import (
	"time"

	"appointment-editor/internal/delivery/dto"
	"appointment-editor/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		UUID:            appointment.UUID,
		Status:          string(appointment.Status),
		StartDateTime:   appointment.StartDateTime,
		EndDateTime:     appointment.EndDateTime,
		PatientUUID:     appointment.PatientUUID,
		ServiceUUID:     appointment.ServiceUUID,
		LocationUUID:    appointment.LocationUUID,
		AppointmentKind: string(appointment.AppointmentKind),
	}
}

// DisableStatusRequestToAppointment builds the snapshot the rule engine reads
func DisableStatusRequestToAppointment(req *dto.DisableStatusRequest) entity.Appointment {
	return entity.Appointment{
		Status:        entity.AppointmentStatus(req.Status),
		StartDateTime: req.StartDateTime.Time,
	}
}

// DisableStatusToResponse wraps a rule engine result
func DisableStatusToResponse(appointment entity.Appointment, components entity.ComponentsDisableStatus, evaluatedAt time.Time) *dto.DisableStatusResponse {
	return &dto.DisableStatusResponse{
		AppointmentUUID: appointment.UUID,
		Status:          string(appointment.Status),
		EvaluatedAt:     evaluatedAt,
		Components:      components,
	}
}
