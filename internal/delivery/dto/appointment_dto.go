package dto

import (
	"time"

	"appointment-editor/internal/domain/entity"
)

// Request DTOs

// DisableStatusRequest is an appointment snapshot supplied by the client.
// A missing or unknown status is evaluated, not rejected, and disables every
// component. IsServiceOnAppointmentEditable overrides the configured flag
// when set.
type DisableStatusRequest struct {
	Status                         string           `json:"status"`
	StartDateTime                  entity.Timestamp `json:"startDateTime"`
	IsServiceOnAppointmentEditable *bool            `json:"isServiceOnAppointmentEditable"`
}

// Response DTOs

type AppointmentResponse struct {
	UUID            string     `json:"uuid"`
	Status          string     `json:"status"`
	StartDateTime   *time.Time `json:"startDateTime,omitempty"`
	EndDateTime     *time.Time `json:"endDateTime,omitempty"`
	PatientUUID     string     `json:"patientUuid,omitempty"`
	ServiceUUID     string     `json:"serviceUuid,omitempty"`
	LocationUUID    string     `json:"locationUuid,omitempty"`
	AppointmentKind string     `json:"appointmentKind,omitempty"`
}

type DisableStatusResponse struct {
	AppointmentUUID string                         `json:"appointmentUuid,omitempty"`
	Status          string                         `json:"status"`
	EvaluatedAt     time.Time                      `json:"evaluatedAt"`
	Components      entity.ComponentsDisableStatus `json:"components"`
}
