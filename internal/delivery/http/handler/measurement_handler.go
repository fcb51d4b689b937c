package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"nutritional-planner/internal/delivery/dto"
	"nutritional-planner/internal/metrics"
	"nutritional-planner/internal/usecase"
	"nutritional-planner/pkg/response"
	"nutritional-planner/pkg/validator"

	"github.com/gorilla/mux"
)

type MeasurementHandler struct {
	measurementUsecase usecase.MeasurementUsecase
	validator          *validator.CustomValidator
}

func NewMeasurementHandler(measurementUsecase usecase.MeasurementUsecase, validator *validator.CustomValidator) *MeasurementHandler {
	return &MeasurementHandler{
		measurementUsecase: measurementUsecase,
		validator:          validator,
	}
}

// SubmitMeasurement is the form-submission boundary: every error from the
// layers below is converted to a user-facing message here, and nothing is
// committed when validation fails.
func (h *MeasurementHandler) SubmitMeasurement(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req dto.SubmitMeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.measurementUsecase.Submit(r.Context(), name, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownProfile):
			response.NotFound(w, "Profile not found")
		case errors.Is(err, metrics.ErrInvalidHeight),
			errors.Is(err, metrics.ErrInvalidWeight):
			response.Error(w, http.StatusBadRequest, "Please enter valid numbers for weight and height", nil)
		case errors.Is(err, usecase.ErrInvalidActivityLevel),
			errors.Is(err, usecase.ErrInvalidDietaryPreference),
			errors.Is(err, usecase.ErrInvalidAllergy):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to store measurement")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Measurement stored successfully", record)
}

func (h *MeasurementHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	history, err := h.measurementUsecase.History(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownProfile):
			response.NotFound(w, "Profile not found")
		default:
			response.InternalServerError(w, "Failed to load history")
		}
		return
	}

	response.Success(w, http.StatusOK, "History retrieved successfully", history)
}
