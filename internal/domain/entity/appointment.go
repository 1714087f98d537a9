package entity

import "time"

// AppointmentStatus is the lifecycle label of an appointment as reported by
// the appointments API. Labels outside the known set are kept verbatim.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCheckedIn AppointmentStatus = "CheckedIn"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusMissed    AppointmentStatus = "Missed"
)

// AppointmentKind tags how an appointment was booked
type AppointmentKind string

const (
	AppointmentKindScheduled AppointmentKind = "Scheduled"
	AppointmentKindWalkIn    AppointmentKind = "WalkIn"
)

// Appointment is a snapshot of an appointment under edit
type Appointment struct {
	UUID            string            `json:"uuid"`
	Status          AppointmentStatus `json:"status"`
	StartDateTime   *time.Time        `json:"startDateTime,omitempty"`
	EndDateTime     *time.Time        `json:"endDateTime,omitempty"`
	PatientUUID     string            `json:"patientUuid,omitempty"`
	ServiceUUID     string            `json:"serviceUuid,omitempty"`
	LocationUUID    string            `json:"locationUuid,omitempty"`
	AppointmentKind AppointmentKind   `json:"appointmentKind,omitempty"`
}

// IsScheduled checks if appointment is in scheduled status
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCheckedIn checks if the patient has checked in
func (a *Appointment) IsCheckedIn() bool {
	return a.Status == AppointmentStatusCheckedIn
}

// HasStarted reports whether the start time is strictly before now.
// An appointment without a start time has not started.
func (a *Appointment) HasStarted(now time.Time) bool {
	return a.StartDateTime != nil && a.StartDateTime.Before(now)
}
