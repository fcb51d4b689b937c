package converter

import (
	"nutritional-planner/internal/delivery/dto"
	"nutritional-planner/internal/domain/entity"
)

// MeasurementToResponse converts a MeasurementRecord entity to its response
// DTO. Artifact paths are attached by the caller after rendering.
func MeasurementToResponse(record *entity.MeasurementRecord, profileName string) *dto.MeasurementResponse {
	if record == nil {
		return nil
	}

	return &dto.MeasurementResponse{
		ID:                 record.ID,
		ProfileName:        profileName,
		WeightLbs:          record.WeightLbs,
		HeightFt:           record.HeightFt,
		HeightIn:           record.HeightIn,
		Goals:              record.Goals,
		BMI:                record.BMI,
		Plan:               record.Plan,
		ActivityLevel:      record.ActivityLevel,
		DietaryPreferences: record.DietaryPreferences,
		Allergies:          record.Allergies,
		CreatedAt:          record.CreatedAt,
	}
}

// RecordsToHistoryPoints projects ordered records onto (timestamp, bmi)
// pairs for trend rendering
func RecordsToHistoryPoints(records []entity.MeasurementRecord) []entity.HistoryPoint {
	points := make([]entity.HistoryPoint, 0, len(records))
	for _, r := range records {
		points = append(points, entity.HistoryPoint{Timestamp: r.CreatedAt, BMI: r.BMI})
	}
	return points
}

// HistoryPointsToResponse converts history points to their response DTOs
func HistoryPointsToResponse(points []entity.HistoryPoint) []dto.HistoryPointResponse {
	out := make([]dto.HistoryPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.HistoryPointResponse{Timestamp: p.Timestamp, BMI: p.BMI})
	}
	return out
}
