package converter

import (
	"appointment-editor/internal/delivery/dto"
	"appointment-editor/internal/domain/entity"
)

// DraftToResponse converts an AppointmentDraft entity to DraftResponse DTO
func DraftToResponse(draft *entity.AppointmentDraft, specialityEnabled bool) *dto.DraftResponse {
	if draft == nil {
		return nil
	}

	response := &dto.DraftResponse{
		ID:                draft.ID,
		PatientUUID:       draft.PatientUUID,
		Providers:         append([]entity.ProviderOption{}, draft.Providers...),
		ServiceUUID:       draft.ServiceUUID,
		ServiceTypeUUID:   draft.ServiceTypeUUID,
		LocationUUID:      draft.LocationUUID,
		SpecialityUUID:    draft.SpecialityUUID,
		Notes:             draft.Notes,
		SpecialityEnabled: specialityEnabled,
		CreatedAt:         draft.CreatedAt,
		UpdatedAt:         draft.UpdatedAt,
	}

	if draft.StartDate != nil {
		response.StartDate = draft.StartDate.Format(entity.DraftDateLayout)
	}
	if draft.StartTime != nil {
		response.StartTime = draft.StartTime.String()
	}
	if draft.EndTime != nil {
		response.EndTime = draft.EndTime.String()
	}

	return response
}
