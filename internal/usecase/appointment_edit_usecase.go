package usecase

import (
	"context"
	"time"

	"appointment-editor/internal/converter"
	"appointment-editor/internal/delivery/dto"
	"appointment-editor/internal/domain/entity"
	"appointment-editor/internal/domain/repository"
	"appointment-editor/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

var ErrAppointmentNotFound = repository.ErrAppointmentNotFound

// AppointmentEditUsecase answers which edit form fields are disabled
type AppointmentEditUsecase interface {
	GetDisableStatus(ctx context.Context, appointmentUUID string) (*dto.DisableStatusResponse, error)
	EvaluateDisableStatus(ctx context.Context, req *dto.DisableStatusRequest) *dto.DisableStatusResponse
}

type appointmentEditUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	metrics         *metrics.EditorMetrics
	appConfig       entity.AppConfig
	now             func() time.Time
}

func NewAppointmentEditUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	editorMetrics *metrics.EditorMetrics,
	appConfig entity.AppConfig,
	now func() time.Time,
) AppointmentEditUsecase {
	if now == nil {
		now = time.Now
	}
	return &appointmentEditUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		metrics:         editorMetrics,
		appConfig:       appConfig,
		now:             now,
	}
}

// GetDisableStatus fetches the appointment and evaluates it with the
// configured isServiceOnAppointmentEditable flag
func (u *appointmentEditUsecase) GetDisableStatus(ctx context.Context, appointmentUUID string) (*dto.DisableStatusResponse, error) {
	appointment, err := u.appointmentRepo.FindByUUID(ctx, appointmentUUID)
	if err != nil {
		u.log.Warnf("Failed to fetch appointment %s: %+v", appointmentUUID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	now := u.now()
	components := entity.GetComponentsDisableStatus(*appointment, u.appConfig.IsServiceOnAppointmentEditable, now)
	u.metrics.ObserveEvaluation("remote")

	return converter.DisableStatusToResponse(*appointment, components, now), nil
}

// EvaluateDisableStatus runs the rules on a client-supplied snapshot
func (u *appointmentEditUsecase) EvaluateDisableStatus(ctx context.Context, req *dto.DisableStatusRequest) *dto.DisableStatusResponse {
	isServiceOnAppointmentEditable := u.appConfig.IsServiceOnAppointmentEditable
	if req.IsServiceOnAppointmentEditable != nil {
		isServiceOnAppointmentEditable = *req.IsServiceOnAppointmentEditable
	}

	appointment := converter.DisableStatusRequestToAppointment(req)
	now := u.now()
	components := entity.GetComponentsDisableStatus(appointment, isServiceOnAppointmentEditable, now)
	u.metrics.ObserveEvaluation("inline")

	return converter.DisableStatusToResponse(appointment, components, now)
}
