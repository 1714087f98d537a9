package handler

import (
	"net/http"

	"appointment-editor/internal/usecase"
	"appointment-editor/pkg/response"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
	}
}

// GetCurrentUser returns the identity carried by the access token
func (h *SessionHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionUsecase.GetCurrentSession(r.Context())
	if err != nil {
		if err == usecase.ErrUserNotInContext {
			response.Unauthorized(w, "Invalid token")
			return
		}
		response.InternalServerError(w, "Failed to get user info")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", session)
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionUsecase.Logout(r.Context()); err != nil {
		if err == usecase.ErrUserNotInContext {
			response.Unauthorized(w, "Invalid token")
			return
		}
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}
