package dto

import "github.com/google/uuid"

// Response DTOs

type SessionResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	RoleID int       `json:"role_id"`
	Role   string    `json:"role"`
}
