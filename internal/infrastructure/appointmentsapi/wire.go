package appointmentsapi

import "appointment-editor/internal/domain/entity"

type reference struct {
	UUID string `json:"uuid"`
}

// appointmentResponse mirrors the appointment representation of the API
type appointmentResponse struct {
	UUID            string           `json:"uuid"`
	Status          string           `json:"status"`
	StartDateTime   entity.Timestamp `json:"startDateTime"`
	EndDateTime     entity.Timestamp `json:"endDateTime"`
	AppointmentKind string           `json:"appointmentKind"`
	Patient         *reference       `json:"patient"`
	Service         *reference       `json:"service"`
	Location        *reference       `json:"location"`
}

func (r appointmentResponse) toEntity() *entity.Appointment {
	appointment := &entity.Appointment{
		UUID:            r.UUID,
		Status:          entity.AppointmentStatus(r.Status),
		StartDateTime:   r.StartDateTime.Time,
		EndDateTime:     r.EndDateTime.Time,
		AppointmentKind: entity.AppointmentKind(r.AppointmentKind),
	}
	if r.Patient != nil {
		appointment.PatientUUID = r.Patient.UUID
	}
	if r.Service != nil {
		appointment.ServiceUUID = r.Service.UUID
	}
	if r.Location != nil {
		appointment.LocationUUID = r.Location.UUID
	}
	return appointment
}
