package usecase

import (
	"context"
	"errors"

	"nutritional-planner/internal/converter"
	"nutritional-planner/internal/delivery/dto"
	"nutritional-planner/internal/domain/entity"
	"nutritional-planner/internal/domain/repository"
	"nutritional-planner/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDuplicateProfile = errors.New("profile name already exists")
	ErrUnknownProfile   = errors.New("profile not found")
	ErrNoMeasurements   = errors.New("profile has no measurements")
)

type ProfileUsecase interface {
	CreateProfile(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	ListProfiles(ctx context.Context) (*dto.ProfileListResponse, error)
	FindLatest(ctx context.Context, profileName string) (*dto.MeasurementResponse, error)
}

type profileUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	profileRepo     repository.ProfileRepository
	measurementRepo repository.MeasurementRepository
	auditService    service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	measurementRepo repository.MeasurementRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:              db,
		log:             log,
		profileRepo:     profileRepo,
		measurementRepo: measurementRepo,
		auditService:    auditService,
	}
}

// CreateProfile registers a new named profile. Names are the natural key:
// a second profile with the same name fails with ErrDuplicateProfile.
func (u *profileUsecase) CreateProfile(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.profileRepo.FindByName(ctx, tx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check profile name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateProfile
	}

	profile := &entity.Profile{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := u.profileRepo.Create(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to create profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionProfileCreate, "profile", profile.ID.String(), profile); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfileToResponse(profile), nil
}

// ListProfiles returns all profile names in creation order.
func (u *profileUsecase) ListProfiles(ctx context.Context) (*dto.ProfileListResponse, error) {
	profiles, err := u.profileRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list profiles: %+v", err)
		return nil, err
	}
	return converter.ProfilesToListResponse(profiles), nil
}

// FindLatest returns the most recent measurement record for the profile,
// used to pre-fill the form on profile selection. A profile with no records
// yields ErrNoMeasurements, an unknown name ErrUnknownProfile.
func (u *profileUsecase) FindLatest(ctx context.Context, profileName string) (*dto.MeasurementResponse, error) {
	profile, err := u.profileRepo.FindByName(ctx, u.db, profileName)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUnknownProfile
	}

	record, err := u.measurementRepo.FindLatestByProfileID(ctx, u.db, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find latest measurement: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrNoMeasurements
	}

	return converter.MeasurementToResponse(record, profile.Name), nil
}
