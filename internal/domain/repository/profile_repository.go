package repository

import (
	"context"

	"nutritional-planner/internal/domain/entity"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.Profile) error
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Profile, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Profile, error)
}
