package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var evaluatedAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func timeAt(t time.Time) *time.Time {
	return &t
}

func schedulingFields(s ComponentsDisableStatus) []bool {
	return []bool{s.ServiceType, s.Providers, s.Location, s.StartDate, s.Time, s.Occurrences, s.EndDate}
}

func assertScheduling(t *testing.T, s ComponentsDisableStatus, disabled bool) {
	t.Helper()
	for i, v := range schedulingFields(s) {
		assert.Equal(t, disabled, v, "scheduling field %d", i)
	}
}

func TestGetComponentsDisableStatus(t *testing.T) {
	past := timeAt(evaluatedAt.AddDate(-5, 0, 0))
	future := timeAt(evaluatedAt.AddDate(0, 0, 3))

	tests := []struct {
		name               string
		appointment        Appointment
		flag               bool
		serviceDisabled    bool
		schedulingDisabled bool
	}{
		{"scheduled without flag", Appointment{Status: AppointmentStatusScheduled}, false, true, false},
		{"scheduled with flag", Appointment{Status: AppointmentStatusScheduled}, true, false, false},
		{"scheduled in the future with flag", Appointment{Status: AppointmentStatusScheduled, StartDateTime: future}, true, false, false},
		{"scheduled already started", Appointment{Status: AppointmentStatusScheduled, StartDateTime: past}, true, false, true},
		{"checked in with flag", Appointment{Status: AppointmentStatusCheckedIn}, true, true, false},
		{"checked in without start", Appointment{Status: AppointmentStatusCheckedIn}, false, true, false},
		{"checked in already started", Appointment{Status: AppointmentStatusCheckedIn, StartDateTime: past}, true, true, true},
		{"missed without start", Appointment{Status: AppointmentStatusMissed}, false, true, true},
		{"unknown status with flag", Appointment{Status: "Unknown"}, true, true, true},
		{"unknown status without flag", Appointment{Status: "Unknown"}, false, true, true},
		{"missing status", Appointment{}, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetComponentsDisableStatus(tt.appointment, tt.flag, evaluatedAt)

			assert.Equal(t, tt.serviceDisabled, got.Service)
			assert.Equal(t, tt.serviceDisabled, got.Speciality)
			assertScheduling(t, got, tt.schedulingDisabled)
		})
	}
}

func TestGetComponentsDisableStatus_StartEqualToNowHasNotStarted(t *testing.T) {
	appointment := Appointment{Status: AppointmentStatusScheduled, StartDateTime: timeAt(evaluatedAt)}

	got := GetComponentsDisableStatus(appointment, false, evaluatedAt)

	assertScheduling(t, got, false)
}

func TestGetComponentsDisableStatus_Idempotent(t *testing.T) {
	appointment := Appointment{Status: AppointmentStatusCheckedIn, StartDateTime: timeAt(evaluatedAt.Add(-time.Hour))}
	snapshot := appointment

	first := GetComponentsDisableStatus(appointment, true, evaluatedAt)
	second := GetComponentsDisableStatus(appointment, true, evaluatedAt)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, appointment)
}
