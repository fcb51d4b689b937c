package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateProfileRequest creates a new named profile
type CreateProfileRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// ProfileResponse represents a profile in responses
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileListResponse lists profile names in creation order
type ProfileListResponse struct {
	Names []string `json:"names"`
}
