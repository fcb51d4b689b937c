package converter

import (
	"nutritional-planner/internal/delivery/dto"
	"nutritional-planner/internal/domain/entity"
)

// ProfileToResponse converts a Profile entity to its response DTO
func ProfileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfileResponse{
		ID:        profile.ID,
		Name:      profile.Name,
		CreatedAt: profile.CreatedAt,
	}
}

// ProfilesToListResponse converts profiles (already in creation order) to
// the ordered name list DTO
func ProfilesToListResponse(profiles []entity.Profile) *dto.ProfileListResponse {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return &dto.ProfileListResponse{Names: names}
}
