package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"nutritional-planner/internal/delivery/dto"
	"nutritional-planner/internal/domain/entity"
	"nutritional-planner/pkg/response"
	"nutritional-planner/pkg/validator"
)

// SnapshotHandler serves the flat-file form snapshot codec used by the
// save/load dialogs.
type SnapshotHandler struct {
	validator *validator.CustomValidator
}

func NewSnapshotHandler(validator *validator.CustomValidator) *SnapshotHandler {
	return &SnapshotHandler{validator: validator}
}

func (h *SnapshotHandler) Encode(w http.ResponseWriter, r *http.Request) {
	var req dto.EncodeSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	snapshot := entity.FormSnapshot{
		WeightLbs:          req.WeightLbs,
		HeightFt:           req.HeightFt,
		HeightIn:           req.HeightIn,
		Goals:              req.Goals,
		ActivityLevel:      req.ActivityLevel,
		DietaryPreferences: req.DietaryPreferences,
		Allergies:          req.Allergies,
	}

	response.Success(w, http.StatusOK, "Snapshot encoded successfully", &dto.SnapshotResponse{Data: snapshot.String()})
}

func (h *SnapshotHandler) Decode(w http.ResponseWriter, r *http.Request) {
	var req dto.DecodeSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	snapshot, err := entity.ParseFormSnapshot(req.Data)
	if err != nil {
		if errors.Is(err, entity.ErrMalformedSnapshot) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to decode snapshot")
		return
	}

	response.Success(w, http.StatusOK, "Snapshot decoded successfully", &dto.DecodedSnapshotResponse{
		WeightLbs:          snapshot.WeightLbs,
		HeightFt:           snapshot.HeightFt,
		HeightIn:           snapshot.HeightIn,
		Goals:              snapshot.Goals,
		ActivityLevel:      snapshot.ActivityLevel,
		DietaryPreferences: snapshot.DietaryPreferences,
		Allergies:          snapshot.Allergies,
	})
}
