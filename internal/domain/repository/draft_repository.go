package repository

import (
	"context"
	"time"

	"appointment-editor/internal/domain/entity"

	"github.com/google/uuid"
)

// DraftRepository keeps editor drafts for the length of an editing session
type DraftRepository interface {
	Save(ctx context.Context, draft *entity.AppointmentDraft, ttl time.Duration) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AppointmentDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
