package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"appointment-editor/internal/delivery/dto"
	"appointment-editor/internal/infrastructure/appointmentsapi"
	"appointment-editor/internal/usecase"
	"appointment-editor/pkg/response"
	"appointment-editor/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	editUsecase usecase.AppointmentEditUsecase
	validator   *validator.CustomValidator
}

func NewAppointmentHandler(editUsecase usecase.AppointmentEditUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		editUsecase: editUsecase,
		validator:   validator,
	}
}

func (h *AppointmentHandler) GetDisableStatus(w http.ResponseWriter, r *http.Request) {
	appointmentUUID := mux.Vars(r)["uuid"]
	if err := h.validator.ValidateVar(appointmentUUID, "required,uuid"); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment UUID", nil)
		return
	}

	status, err := h.editUsecase.GetDisableStatus(r.Context(), appointmentUUID)
	if err != nil {
		var apiErr *appointmentsapi.APIError
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.As(err, &apiErr):
			response.BadGateway(w, "Appointments API request failed", apiErr.Message)
		default:
			response.InternalServerError(w, "Failed to get disable status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Disable status retrieved successfully", status)
}

func (h *AppointmentHandler) EvaluateDisableStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.DisableStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Success(w, http.StatusOK, "Disable status evaluated successfully", h.editUsecase.EvaluateDisableStatus(r.Context(), &req))
}
