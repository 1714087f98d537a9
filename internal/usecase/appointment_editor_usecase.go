package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appointment-editor/internal/converter"
	"appointment-editor/internal/delivery/dto"
	"appointment-editor/internal/delivery/http/middleware"
	"appointment-editor/internal/domain/entity"
	"appointment-editor/internal/domain/repository"
	"appointment-editor/internal/infrastructure/metrics"
	"appointment-editor/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDraftNotFound        = errors.New("draft not found")
	ErrDraftNotOwned        = errors.New("draft does not belong to you")
	ErrUnknownDraftField    = errors.New("unknown draft field")
	ErrInvalidFieldValue    = errors.New("invalid field value")
	ErrSpecialitiesDisabled = errors.New("specialities are not enabled")
	ErrIncompleteDraft      = errors.New("draft is missing required fields")
	ErrInvalidTimeRange     = errors.New("end time must be after start time")
	ErrUserNotInContext     = errors.New("user not found in context")
)

// EditorSettings is the editor configuration the usecase runs with
type EditorSettings struct {
	AppConfig entity.AppConfig
	DraftTTL  time.Duration
	Location  *time.Location
}

type AppointmentEditorUsecase interface {
	StartDraft(ctx context.Context) (*dto.DraftResponse, error)
	GetDraft(ctx context.Context, draftID uuid.UUID) (*dto.DraftResponse, error)
	ChangeField(ctx context.Context, draftID uuid.UUID, field entity.DraftField, req *dto.FieldChangeRequest) (*dto.DraftResponse, error)
	DiscardDraft(ctx context.Context, draftID uuid.UUID) error
	GetPayload(ctx context.Context, draftID uuid.UUID) (*entity.AppointmentRequest, error)
	CheckAndSave(ctx context.Context, draftID uuid.UUID) (*dto.SaveResponse, error)
	GetConfig(ctx context.Context) *dto.EditorConfigResponse
}

type appointmentEditorUsecase struct {
	log             *logrus.Logger
	draftRepo       repository.DraftRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	metrics         *metrics.EditorMetrics
	settings        EditorSettings
	now             func() time.Time
}

func NewAppointmentEditorUsecase(
	log *logrus.Logger,
	draftRepo repository.DraftRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	editorMetrics *metrics.EditorMetrics,
	settings EditorSettings,
	now func() time.Time,
) AppointmentEditorUsecase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &appointmentEditorUsecase{
		log:             log,
		draftRepo:       draftRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		metrics:         editorMetrics,
		settings:        settings,
		now:             now,
	}
}

// StartDraft opens a new editing session for the logged-in user
func (u *appointmentEditorUsecase) StartDraft(ctx context.Context) (*dto.DraftResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	draft := entity.NewAppointmentDraft(userID, u.now())
	if err := u.draftRepo.Save(ctx, draft, u.settings.DraftTTL); err != nil {
		u.log.Warnf("Failed to store draft %s: %+v", draft.ID, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &userID, entity.AuditActionDraftCreate, draft.ID.String(), nil); err != nil {
		u.log.Warnf("Audit of draft %s creation failed (non-fatal): %+v", draft.ID, err)
	}

	u.log.Infof("Draft started: id=%s, user=%s", draft.ID, userID)
	return converter.DraftToResponse(draft, u.settings.AppConfig.EnableSpecialities), nil
}

func (u *appointmentEditorUsecase) GetDraft(ctx context.Context, draftID uuid.UUID) (*dto.DraftResponse, error) {
	draft, err := u.loadOwnedDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return converter.DraftToResponse(draft, u.settings.AppConfig.EnableSpecialities), nil
}

// ChangeField replaces one piece of draft state wholesale
func (u *appointmentEditorUsecase) ChangeField(ctx context.Context, draftID uuid.UUID, field entity.DraftField, req *dto.FieldChangeRequest) (*dto.DraftResponse, error) {
	draft, err := u.loadOwnedDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if err := u.applyField(draft, field, req); err != nil {
		return nil, err
	}
	draft.UpdatedAt = u.now()

	if err := u.draftRepo.Save(ctx, draft, u.settings.DraftTTL); err != nil {
		u.log.Warnf("Failed to store draft %s after %s change: %+v", draftID, field, err)
		return nil, err
	}

	return converter.DraftToResponse(draft, u.settings.AppConfig.EnableSpecialities), nil
}

func (u *appointmentEditorUsecase) applyField(draft *entity.AppointmentDraft, field entity.DraftField, req *dto.FieldChangeRequest) error {
	switch field {
	case entity.DraftFieldPatient:
		draft.SetPatient(req.Value)
	case entity.DraftFieldProviders:
		draft.SetProviders(req.Providers)
	case entity.DraftFieldService:
		draft.SetService(req.Value)
	case entity.DraftFieldServiceType:
		draft.SetServiceType(req.Value)
	case entity.DraftFieldLocation:
		draft.SetLocation(req.Value)
	case entity.DraftFieldSpeciality:
		if !u.settings.AppConfig.EnableSpecialities {
			return ErrSpecialitiesDisabled
		}
		draft.SetSpeciality(req.Value)
	case entity.DraftFieldStartDate:
		if req.Value == "" {
			draft.StartDate = nil
			return nil
		}
		date, err := time.ParseInLocation(entity.DraftDateLayout, req.Value, u.settings.Location)
		if err != nil {
			return fmt.Errorf("%w: startDate %q", ErrInvalidFieldValue, req.Value)
		}
		draft.SetStartDate(date)
	case entity.DraftFieldStartTime, entity.DraftFieldEndTime:
		if req.Value == "" {
			if field == entity.DraftFieldStartTime {
				draft.StartTime = nil
			} else {
				draft.EndTime = nil
			}
			return nil
		}
		clock, err := entity.ParseClockTime(req.Value)
		if err != nil {
			return fmt.Errorf("%w: %s %q", ErrInvalidFieldValue, field, req.Value)
		}
		if field == entity.DraftFieldStartTime {
			draft.SetStartTime(clock)
		} else {
			draft.SetEndTime(clock)
		}
	case entity.DraftFieldNotes:
		draft.SetNotes(req.Value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownDraftField, field)
	}
	return nil
}

// DiscardDraft ends the editing session without saving
func (u *appointmentEditorUsecase) DiscardDraft(ctx context.Context, draftID uuid.UUID) error {
	draft, err := u.loadOwnedDraft(ctx, draftID)
	if err != nil {
		return err
	}

	if err := u.draftRepo.Delete(ctx, draftID); err != nil {
		u.log.Warnf("Failed to delete draft %s: %+v", draftID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, &draft.CreatedBy, entity.AuditActionDraftDiscard, draftID.String(), draft); err != nil {
		u.log.Warnf("Audit of draft %s discard failed (non-fatal): %+v", draftID, err)
	}

	u.log.Infof("Draft discarded: id=%s", draftID)
	return nil
}

func (u *appointmentEditorUsecase) GetPayload(ctx context.Context, draftID uuid.UUID) (*entity.AppointmentRequest, error) {
	draft, err := u.loadOwnedDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return BuildPayload(draft, u.settings.Location)
}

// CheckAndSave sends the draft to the appointments API.
//
// Flow:
// 1. Build the payload from the draft
// 2. Save through the appointments API; its error is returned as is (wrapped)
// 3. Audit the attempt either way
// 4. Drop the draft once the save succeeded
func (u *appointmentEditorUsecase) CheckAndSave(ctx context.Context, draftID uuid.UUID) (*dto.SaveResponse, error) {
	draft, err := u.loadOwnedDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	payload, err := BuildPayload(draft, u.settings.Location)
	if err != nil {
		return nil, err
	}

	startedAt := time.Now()
	appointment, err := u.appointmentRepo.Save(ctx, payload)
	elapsed := time.Since(startedAt).Seconds()
	if err != nil {
		u.metrics.ObserveSave("failed", elapsed)
		if auditErr := u.auditService.LogFailure(ctx, &draft.CreatedBy, entity.AuditActionAppointmentSaveFailed, draftID.String(), payload, err); auditErr != nil {
			u.log.Warnf("Audit of failed save for draft %s failed (non-fatal): %+v", draftID, auditErr)
		}
		u.log.Errorf("Failed to save appointment for draft %s: %+v", draftID, err)
		return nil, fmt.Errorf("save appointment: %w", err)
	}
	u.metrics.ObserveSave("success", elapsed)

	entityID := draftID.String()
	if appointment != nil && appointment.UUID != "" {
		entityID = appointment.UUID
	}
	if err := u.auditService.LogCreate(ctx, &draft.CreatedBy, entity.AuditActionAppointmentSave, entityID, payload); err != nil {
		u.log.Warnf("Audit of save for draft %s failed (non-fatal): %+v", draftID, err)
	}

	// The appointment exists now; a stale draft only lingers until its TTL
	if err := u.draftRepo.Delete(ctx, draftID); err != nil {
		u.log.Warnf("Failed to delete saved draft %s (non-fatal): %+v", draftID, err)
	}

	u.log.Infof("Appointment saved: draft=%s, appointment=%s, patient=%s", draftID, entityID, payload.PatientUUID)
	return &dto.SaveResponse{
		DraftID:     draftID,
		Payload:     payload,
		Appointment: converter.AppointmentToResponse(appointment),
	}, nil
}

func (u *appointmentEditorUsecase) GetConfig(ctx context.Context) *dto.EditorConfigResponse {
	return &dto.EditorConfigResponse{
		EnableSpecialities:             u.settings.AppConfig.EnableSpecialities,
		IsServiceOnAppointmentEditable: u.settings.AppConfig.IsServiceOnAppointmentEditable,
	}
}

func (u *appointmentEditorUsecase) loadOwnedDraft(ctx context.Context, draftID uuid.UUID) (*entity.AppointmentDraft, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	draft, err := u.draftRepo.FindByID(ctx, draftID)
	if err != nil {
		u.log.Warnf("Failed to find draft %s: %+v", draftID, err)
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}
	if !draft.IsOwnedBy(userID) {
		return nil, ErrDraftNotOwned
	}
	return draft, nil
}
