package entity

// AppointmentTimeLayout is the timestamp format the appointments API expects
const AppointmentTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// AppointmentRequest is the body sent to the appointments API on save
type AppointmentRequest struct {
	PatientUUID     string          `json:"patientUuid"`
	ServiceUUID     string          `json:"serviceUuid"`
	ServiceTypeUUID string          `json:"serviceTypeUuid"`
	StartDateTime   string          `json:"startDateTime"`
	EndDateTime     string          `json:"endDateTime"`
	Providers       []Provider      `json:"providers"`
	LocationUUID    string          `json:"locationUuid"`
	AppointmentKind AppointmentKind `json:"appointmentKind"`
	Comments        string          `json:"comments,omitempty"`
}

// AppConfig carries the editor feature switches. The zero value disables
// every feature.
type AppConfig struct {
	EnableSpecialities             bool `json:"enableSpecialities"`
	IsServiceOnAppointmentEditable bool `json:"isServiceOnAppointmentEditable"`
}
