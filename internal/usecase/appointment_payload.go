package usecase

import (
	"fmt"
	"strings"
	"time"

	"appointment-editor/internal/domain/entity"
)

// GetFormattedProviders maps picker options to provider records, label to
// name and value to uuid. Input order is kept and options are not modified.
func GetFormattedProviders(options []entity.ProviderOption) []entity.Provider {
	providers := make([]entity.Provider, 0, len(options))
	for _, option := range options {
		providers = append(providers, entity.Provider{
			Name: option.Label,
			UUID: option.Value,
		})
	}
	return providers
}

// BuildPayload assembles the save request for a draft. Start and end are the
// draft's start date combined with its start and end times in loc.
func BuildPayload(draft *entity.AppointmentDraft, loc *time.Location) (*entity.AppointmentRequest, error) {
	var missing []string
	if draft.PatientUUID == "" {
		missing = append(missing, string(entity.DraftFieldPatient))
	}
	if draft.StartDate == nil {
		missing = append(missing, string(entity.DraftFieldStartDate))
	}
	if draft.StartTime == nil {
		missing = append(missing, string(entity.DraftFieldStartTime))
	}
	if draft.EndTime == nil {
		missing = append(missing, string(entity.DraftFieldEndTime))
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteDraft, strings.Join(missing, ", "))
	}

	start := draft.StartTime.On(*draft.StartDate, loc)
	end := draft.EndTime.On(*draft.StartDate, loc)
	if !end.After(start) {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, draft.StartTime, draft.EndTime)
	}

	return &entity.AppointmentRequest{
		PatientUUID:     draft.PatientUUID,
		ServiceUUID:     draft.ServiceUUID,
		ServiceTypeUUID: draft.ServiceTypeUUID,
		StartDateTime:   start.UTC().Format(entity.AppointmentTimeLayout),
		EndDateTime:     end.UTC().Format(entity.AppointmentTimeLayout),
		Providers:       GetFormattedProviders(draft.Providers),
		LocationUUID:    draft.LocationUUID,
		AppointmentKind: entity.AppointmentKindScheduled,
		Comments:        draft.Notes,
	}, nil
}
