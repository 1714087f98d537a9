package entity

import "time"

// ComponentsDisableStatus holds, per field group of the appointment edit
// form, whether the field must be rendered non-interactive.
type ComponentsDisableStatus struct {
	Service     bool `json:"service"`
	Speciality  bool `json:"speciality"`
	ServiceType bool `json:"serviceType"`
	Providers   bool `json:"providers"`
	Location    bool `json:"location"`
	StartDate   bool `json:"startDate"`
	Time        bool `json:"time"`
	Occurrences bool `json:"occurrences"`
	EndDate     bool `json:"endDate"`
}

// GetComponentsDisableStatus decides which edit form fields are disabled for
// the given appointment.
//
// Scheduling fields stay editable while the appointment is Scheduled or
// CheckedIn and has not started yet. Service and speciality are editable only
// for Scheduled appointments, and only when isServiceOnAppointmentEditable is
// set. Unknown statuses disable everything.
func GetComponentsDisableStatus(appointment Appointment, isServiceOnAppointmentEditable bool, now time.Time) ComponentsDisableStatus {
	isScheduledOrCheckedIn := appointment.IsScheduled() || appointment.IsCheckedIn()
	schedulingDisabled := !isScheduledOrCheckedIn || appointment.HasStarted(now)
	serviceDisabled := !(appointment.IsScheduled() && isServiceOnAppointmentEditable)

	return ComponentsDisableStatus{
		Service:     serviceDisabled,
		Speciality:  serviceDisabled,
		ServiceType: schedulingDisabled,
		Providers:   schedulingDisabled,
		Location:    schedulingDisabled,
		StartDate:   schedulingDisabled,
		Time:        schedulingDisabled,
		Occurrences: schedulingDisabled,
		EndDate:     schedulingDisabled,
	}
}
