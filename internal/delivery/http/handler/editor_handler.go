package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"appointment-editor/internal/delivery/dto"
	"appointment-editor/internal/domain/entity"
	"appointment-editor/internal/infrastructure/appointmentsapi"
	"appointment-editor/internal/usecase"
	"appointment-editor/pkg/response"
	"appointment-editor/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type EditorHandler struct {
	editorUsecase usecase.AppointmentEditorUsecase
	validator     *validator.CustomValidator
}

func NewEditorHandler(editorUsecase usecase.AppointmentEditorUsecase, validator *validator.CustomValidator) *EditorHandler {
	return &EditorHandler{
		editorUsecase: editorUsecase,
		validator:     validator,
	}
}

func (h *EditorHandler) StartDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.editorUsecase.StartDraft(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to start draft")
		return
	}

	response.Success(w, http.StatusCreated, "Draft started successfully", draft)
}

func (h *EditorHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := parseDraftID(w, r)
	if !ok {
		return
	}

	draft, err := h.editorUsecase.GetDraft(r.Context(), draftID)
	if err != nil {
		h.writeError(w, err, "Failed to get draft")
		return
	}

	response.Success(w, http.StatusOK, "Draft retrieved successfully", draft)
}

// fieldValueTags are the formats of text-valued draft fields; empty clears
var fieldValueTags = map[entity.DraftField]string{
	entity.DraftFieldStartDate: "omitempty,date",
	entity.DraftFieldStartTime: "omitempty,clock",
	entity.DraftFieldEndTime:   "omitempty,clock",
}

func (h *EditorHandler) ChangeField(w http.ResponseWriter, r *http.Request) {
	draftID, ok := parseDraftID(w, r)
	if !ok {
		return
	}

	var req dto.FieldChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	field := entity.DraftField(mux.Vars(r)["field"])
	if tag, ok := fieldValueTags[field]; ok {
		if err := h.validator.ValidateVar(req.Value, tag); err != nil {
			response.ValidationError(w, h.validator.FormatVarErrors(string(field), err))
			return
		}
	}

	draft, err := h.editorUsecase.ChangeField(r.Context(), draftID, field, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update draft")
		return
	}

	response.Success(w, http.StatusOK, "Draft updated successfully", draft)
}

func (h *EditorHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := parseDraftID(w, r)
	if !ok {
		return
	}

	if err := h.editorUsecase.DiscardDraft(r.Context(), draftID); err != nil {
		h.writeError(w, err, "Failed to discard draft")
		return
	}

	response.Success(w, http.StatusOK, "Draft discarded successfully", nil)
}

func (h *EditorHandler) GetPayload(w http.ResponseWriter, r *http.Request) {
	draftID, ok := parseDraftID(w, r)
	if !ok {
		return
	}

	payload, err := h.editorUsecase.GetPayload(r.Context(), draftID)
	if err != nil {
		h.writeError(w, err, "Failed to build payload")
		return
	}

	response.Success(w, http.StatusOK, "Payload built successfully", payload)
}

func (h *EditorHandler) Save(w http.ResponseWriter, r *http.Request) {
	draftID, ok := parseDraftID(w, r)
	if !ok {
		return
	}

	saved, err := h.editorUsecase.CheckAndSave(r.Context(), draftID)
	if err != nil {
		h.writeError(w, err, "Failed to save appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment saved successfully", saved)
}

func (h *EditorHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Editor config retrieved successfully", h.editorUsecase.GetConfig(r.Context()))
}

func (h *EditorHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var apiErr *appointmentsapi.APIError
	switch {
	case errors.Is(err, usecase.ErrUserNotInContext):
		response.Unauthorized(w, "User not found in context")
	case errors.Is(err, usecase.ErrDraftNotFound):
		response.NotFound(w, "Draft not found")
	case errors.Is(err, usecase.ErrDraftNotOwned):
		response.Forbidden(w, "Draft belongs to another user")
	case errors.Is(err, usecase.ErrUnknownDraftField):
		response.BadRequest(w, "Unknown draft field")
	case errors.Is(err, usecase.ErrSpecialitiesDisabled):
		response.BadRequest(w, "Specialities are not enabled")
	case errors.Is(err, usecase.ErrInvalidFieldValue),
		errors.Is(err, usecase.ErrIncompleteDraft),
		errors.Is(err, usecase.ErrInvalidTimeRange):
		response.BadRequest(w, err.Error())
	case errors.As(err, &apiErr):
		response.BadGateway(w, "Appointments API rejected the request", apiErr.Message)
	default:
		response.InternalServerError(w, fallback)
	}
}

func parseDraftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	draftID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid draft ID", nil)
		return uuid.Nil, false
	}
	return draftID, true
}
