package entity

import (
	"time"

	"github.com/google/uuid"
)

// DraftField names a piece of editor state that can be changed on its own
type DraftField string

const (
	DraftFieldPatient     DraftField = "patient"
	DraftFieldProviders   DraftField = "providers"
	DraftFieldService     DraftField = "service"
	DraftFieldServiceType DraftField = "serviceType"
	DraftFieldLocation    DraftField = "location"
	DraftFieldSpeciality  DraftField = "speciality"
	DraftFieldStartDate   DraftField = "startDate"
	DraftFieldStartTime   DraftField = "startTime"
	DraftFieldEndTime     DraftField = "endTime"
	DraftFieldNotes       DraftField = "notes"
)

// DraftDateLayout is the wire format of the draft's start date
const DraftDateLayout = "2006-01-02"

// AppointmentDraft is the state of an appointment being composed in the
// editor. It lives only for the editing session.
type AppointmentDraft struct {
	ID              uuid.UUID        `json:"id"`
	PatientUUID     string           `json:"patientUuid,omitempty"`
	Providers       []ProviderOption `json:"providers"`
	ServiceUUID     string           `json:"serviceUuid,omitempty"`
	ServiceTypeUUID string           `json:"serviceTypeUuid,omitempty"`
	LocationUUID    string           `json:"locationUuid,omitempty"`
	SpecialityUUID  string           `json:"specialityUuid,omitempty"`
	StartDate       *time.Time       `json:"startDate,omitempty"`
	StartTime       *ClockTime       `json:"startTime,omitempty"`
	EndTime         *ClockTime       `json:"endTime,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedBy       uuid.UUID        `json:"createdBy"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewAppointmentDraft returns an empty draft owned by createdBy
func NewAppointmentDraft(createdBy uuid.UUID, now time.Time) *AppointmentDraft {
	return &AppointmentDraft{
		ID:        uuid.New(),
		Providers: []ProviderOption{},
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (d *AppointmentDraft) SetPatient(patientUUID string) {
	d.PatientUUID = patientUUID
}

// SetProviders replaces the provider selection with a copy of providers
func (d *AppointmentDraft) SetProviders(providers []ProviderOption) {
	d.Providers = append([]ProviderOption{}, providers...)
}

func (d *AppointmentDraft) SetService(serviceUUID string) {
	d.ServiceUUID = serviceUUID
}

func (d *AppointmentDraft) SetServiceType(serviceTypeUUID string) {
	d.ServiceTypeUUID = serviceTypeUUID
}

func (d *AppointmentDraft) SetLocation(locationUUID string) {
	d.LocationUUID = locationUUID
}

func (d *AppointmentDraft) SetSpeciality(specialityUUID string) {
	d.SpecialityUUID = specialityUUID
}

func (d *AppointmentDraft) SetStartDate(date time.Time) {
	d.StartDate = &date
}

func (d *AppointmentDraft) SetStartTime(t ClockTime) {
	d.StartTime = &t
}

func (d *AppointmentDraft) SetEndTime(t ClockTime) {
	d.EndTime = &t
}

func (d *AppointmentDraft) SetNotes(notes string) {
	d.Notes = notes
}

// IsOwnedBy checks if the draft was started by userID
func (d *AppointmentDraft) IsOwnedBy(userID uuid.UUID) bool {
	return d.CreatedBy == userID
}
