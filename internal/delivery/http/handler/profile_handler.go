package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"nutritional-planner/internal/delivery/dto"
	"nutritional-planner/internal/usecase"
	"nutritional-planner/pkg/response"
	"nutritional-planner/pkg/validator"

	"github.com/gorilla/mux"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.CreateProfile(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateProfile):
			response.Conflict(w, "Profile name already exists")
		default:
			response.InternalServerError(w, "Failed to create profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Profile created successfully", profile)
}

func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileUsecase.ListProfiles(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list profiles")
		return
	}

	response.Success(w, http.StatusOK, "Profiles retrieved successfully", profiles)
}

func (h *ProfileHandler) GetLatestMeasurement(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	record, err := h.profileUsecase.FindLatest(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownProfile):
			response.NotFound(w, "Profile not found")
		case errors.Is(err, usecase.ErrNoMeasurements):
			response.NotFound(w, "Profile has no measurements yet")
		default:
			response.InternalServerError(w, "Failed to load latest measurement")
		}
		return
	}

	response.Success(w, http.StatusOK, "Latest measurement retrieved successfully", record)
}
