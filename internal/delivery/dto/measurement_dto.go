package dto

import "time"

// SubmitMeasurementRequest is one intake form submission for a profile.
// The preference fields are optional but must come from the fixed
// vocabularies when present; that check happens in the usecase because
// the vocabularies live in the domain layer.
type SubmitMeasurementRequest struct {
	WeightLbs          float64 `json:"weight_lbs" validate:"required,gt=0"`
	HeightFt           int     `json:"height_ft" validate:"gte=0"`
	HeightIn           int     `json:"height_in" validate:"gte=0"`
	Goals              string  `json:"goals" validate:"max=1000"`
	ActivityLevel      string  `json:"activity_level" validate:"max=50"`
	DietaryPreferences string  `json:"dietary_preferences" validate:"max=50"`
	Allergies          string  `json:"allergies" validate:"max=50"`
}

// MeasurementResponse represents a stored measurement record plus the
// artifact paths rendered for it.
type MeasurementResponse struct {
	ID                 int64     `json:"id"`
	ProfileName        string    `json:"profile_name"`
	WeightLbs          float64   `json:"weight_lbs"`
	HeightFt           int       `json:"height_ft"`
	HeightIn           int       `json:"height_in"`
	Goals              string    `json:"goals,omitempty"`
	BMI                float64   `json:"bmi"`
	Plan               string    `json:"plan"`
	ActivityLevel      string    `json:"activity_level,omitempty"`
	DietaryPreferences string    `json:"dietary_preferences,omitempty"`
	Allergies          string    `json:"allergies,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	QRCodePath         string    `json:"qr_code_path,omitempty"`
	BMIChartPath       string    `json:"bmi_chart_path,omitempty"`
}

// HistoryPointResponse is one (timestamp, bmi) pair in a history response
type HistoryPointResponse struct {
	Timestamp time.Time `json:"timestamp"`
	BMI       float64   `json:"bmi"`
}

// HistoryResponse is a profile's ordered BMI history plus the rendered
// progress chart, when enough points exist to draw one.
type HistoryResponse struct {
	ProfileName       string                 `json:"profile_name"`
	Points            []HistoryPointResponse `json:"points"`
	ProgressChartPath string                 `json:"progress_chart_path,omitempty"`
}
