package repository

import (
	"context"
	"errors"

	"nutritional-planner/internal/domain/entity"
	domainRepo "nutritional-planner/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type measurementRepository struct{}

func NewMeasurementRepository() domainRepo.MeasurementRepository {
	return &measurementRepository{}
}

func (r *measurementRepository) Create(ctx context.Context, db *gorm.DB, record *entity.MeasurementRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

// FindByProfileID returns the profile's full history in ascending created_at
// order, ties broken by insertion order. Returns an empty slice (not nil)
// when the profile has no records.
func (r *measurementRepository) FindByProfileID(ctx context.Context, db *gorm.DB, profileID uuid.UUID) ([]entity.MeasurementRecord, error) {
	records := []entity.MeasurementRecord{}
	err := db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *measurementRepository) FindLatestByProfileID(ctx context.Context, db *gorm.DB, profileID uuid.UUID) (*entity.MeasurementRecord, error) {
	var record entity.MeasurementRecord
	err := db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC, id DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
