package service

import (
	"context"

	"appointment-editor/internal/domain/entity"
	"appointment-editor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records editor actions. Callers treat a failed write as
// non-fatal; the error is returned for logging only.
type AuditService interface {
	LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityID string, newValue interface{}) error
	LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityID string, oldValue interface{}) error
	LogFailure(ctx context.Context, userID *uuid.UUID, action string, entityID string, value interface{}, cause error) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityID string, newValue interface{}) error {
	return s.write(ctx, userID, action, entityID, entity.JSON{
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityID string, oldValue interface{}) error {
	return s.write(ctx, userID, action, entityID, entity.JSON{
		"old_value": oldValue,
		"new_value": nil,
	})
}

// LogFailure logs an action that did not complete, with the value it carried
func (s *auditService) LogFailure(ctx context.Context, userID *uuid.UUID, action string, entityID string, value interface{}, cause error) error {
	metadata := entity.JSON{"value": value}
	if cause != nil {
		metadata["error"] = cause.Error()
	}
	return s.write(ctx, userID, action, entityID, metadata)
}

func (s *auditService) write(ctx context.Context, userID *uuid.UUID, action string, entityID string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		EntityID: entityID,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log %s for %s: %+v", action, entityID, err)
		return err
	}

	return nil
}
