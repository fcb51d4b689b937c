package repository

import (
	"context"

	"nutritional-planner/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeasurementRepository interface {
	Create(ctx context.Context, db *gorm.DB, record *entity.MeasurementRecord) error
	FindByProfileID(ctx context.Context, db *gorm.DB, profileID uuid.UUID) ([]entity.MeasurementRecord, error)
	FindLatestByProfileID(ctx context.Context, db *gorm.DB, profileID uuid.UUID) (*entity.MeasurementRecord, error)
}
