package dto

import (
	"time"

	"appointment-editor/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type AuditLogListRequest struct {
	Action   string `json:"action" validate:"omitempty,max=100"`
	EntityID string `json:"entity_id" validate:"omitempty,max=64"`
	Page     int    `json:"page" validate:"gte=1"`
	Limit    int    `json:"limit" validate:"gte=1,lte=100"`
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	UserID    *uuid.UUID  `json:"user_id,omitempty"`
	Action    string      `json:"action"`
	EntityID  string      `json:"entity_id,omitempty"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
}
