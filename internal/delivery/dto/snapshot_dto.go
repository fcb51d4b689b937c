package dto

// EncodeSnapshotRequest encodes form fields into the flat-file line
type EncodeSnapshotRequest struct {
	WeightLbs          float64 `json:"weight_lbs" validate:"required,gt=0"`
	HeightFt           int     `json:"height_ft" validate:"gte=0"`
	HeightIn           int     `json:"height_in" validate:"gte=0"`
	Goals              string  `json:"goals" validate:"excludesall=0x2C"`
	ActivityLevel      string  `json:"activity_level" validate:"excludesall=0x2C"`
	DietaryPreferences string  `json:"dietary_preferences" validate:"excludesall=0x2C"`
	Allergies          string  `json:"allergies" validate:"excludesall=0x2C"`
}

// SnapshotResponse carries the encoded flat-file line
type SnapshotResponse struct {
	Data string `json:"data"`
}

// DecodeSnapshotRequest decodes a flat-file line back into form fields
type DecodeSnapshotRequest struct {
	Data string `json:"data" validate:"required"`
}

// DecodedSnapshotResponse is the parsed form content
type DecodedSnapshotResponse struct {
	WeightLbs          float64 `json:"weight_lbs"`
	HeightFt           int     `json:"height_ft"`
	HeightIn           int     `json:"height_in"`
	Goals              string  `json:"goals"`
	ActivityLevel      string  `json:"activity_level"`
	DietaryPreferences string  `json:"dietary_preferences"`
	Allergies          string  `json:"allergies"`
}
