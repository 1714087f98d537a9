package dto

import (
	"time"

	"appointment-editor/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

// FieldChangeRequest carries the new value of one draft field. Providers is
// used by the providers field; every other field reads Value.
type FieldChangeRequest struct {
	Value     string                  `json:"value"`
	Providers []entity.ProviderOption `json:"providers" validate:"omitempty,dive"`
}

// Response DTOs

type DraftResponse struct {
	ID                uuid.UUID               `json:"id"`
	PatientUUID       string                  `json:"patientUuid"`
	Providers         []entity.ProviderOption `json:"providers"`
	ServiceUUID       string                  `json:"serviceUuid"`
	ServiceTypeUUID   string                  `json:"serviceTypeUuid"`
	LocationUUID      string                  `json:"locationUuid"`
	SpecialityUUID    string                  `json:"specialityUuid"`
	StartDate         string                  `json:"startDate"`
	StartTime         string                  `json:"startTime"`
	EndTime           string                  `json:"endTime"`
	Notes             string                  `json:"notes"`
	SpecialityEnabled bool                    `json:"specialityEnabled"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

type SaveResponse struct {
	DraftID     uuid.UUID                  `json:"draftId"`
	Payload     *entity.AppointmentRequest `json:"payload"`
	Appointment *AppointmentResponse       `json:"appointment,omitempty"`
}

type EditorConfigResponse struct {
	EnableSpecialities             bool `json:"enableSpecialities"`
	IsServiceOnAppointmentEditable bool `json:"isServiceOnAppointmentEditable"`
}
