package repository

import (
	"context"
	"errors"

	"nutritional-planner/internal/domain/entity"
	domainRepo "nutritional-planner/internal/domain/repository"

	"gorm.io/gorm"
)

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.Profile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.WithContext(ctx).Where("name = ?", name).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Profile, error) {
	var profiles []entity.Profile
	err := db.WithContext(ctx).Order("created_at ASC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
