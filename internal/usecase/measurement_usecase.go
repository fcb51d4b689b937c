package usecase

import (
	"context"
	"errors"
	"time"

	"nutritional-planner/internal/converter"
	"nutritional-planner/internal/delivery/dto"
	"nutritional-planner/internal/domain/entity"
	"nutritional-planner/internal/domain/repository"
	"nutritional-planner/internal/export"
	"nutritional-planner/internal/metrics"
	"nutritional-planner/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidActivityLevel     = errors.New("activity level is not in the allowed vocabulary")
	ErrInvalidDietaryPreference = errors.New("dietary preference is not in the allowed vocabulary")
	ErrInvalidAllergy           = errors.New("allergy is not in the allowed vocabulary")
)

type MeasurementUsecase interface {
	Submit(ctx context.Context, profileName string, req *dto.SubmitMeasurementRequest) (*dto.MeasurementResponse, error)
	History(ctx context.Context, profileName string) (*dto.HistoryResponse, error)
}

type measurementUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	profileRepo     repository.ProfileRepository
	measurementRepo repository.MeasurementRepository
	planService     service.PlanService
	auditService    service.AuditService
	exporter        *export.Exporter
}

func NewMeasurementUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	measurementRepo repository.MeasurementRepository,
	planService service.PlanService,
	auditService service.AuditService,
	exporter *export.Exporter,
) MeasurementUsecase {
	return &measurementUsecase{
		db:              db,
		log:             log,
		profileRepo:     profileRepo,
		measurementRepo: measurementRepo,
		planService:     planService,
		auditService:    auditService,
		exporter:        exporter,
	}
}

// Submit validates the intake form, derives BMI and the composed plan text,
// and appends an immutable measurement record for the profile in a single
// transaction. The stored BMI is always the Metrics Engine output for the
// same row's weight and height, computed here and never recomputed later.
func (u *measurementUsecase) Submit(ctx context.Context, profileName string, req *dto.SubmitMeasurementRequest) (*dto.MeasurementResponse, error) {
	if !entity.ValidActivityLevel(req.ActivityLevel) {
		return nil, ErrInvalidActivityLevel
	}
	if !entity.ValidDietaryPreference(req.DietaryPreferences) {
		return nil, ErrInvalidDietaryPreference
	}
	if !entity.ValidAllergy(req.Allergies) {
		return nil, ErrInvalidAllergy
	}

	// Validation happens before any state is touched: a bad height or
	// weight never reaches the store.
	bmi, err := metrics.CalculateBMI(req.WeightLbs, req.HeightFt, req.HeightIn)
	if err != nil {
		return nil, err
	}

	category := metrics.Classify(bmi)
	planText := u.planService.BuildPlanText(category, req.ActivityLevel, req.DietaryPreferences, req.Allergies)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.FindByName(ctx, tx, profileName)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUnknownProfile
	}

	record := &entity.MeasurementRecord{
		ProfileID:          profile.ID,
		WeightLbs:          req.WeightLbs,
		HeightFt:           req.HeightFt,
		HeightIn:           req.HeightIn,
		Goals:              req.Goals,
		BMI:                bmi,
		Plan:               planText,
		ActivityLevel:      req.ActivityLevel,
		DietaryPreferences: req.DietaryPreferences,
		Allergies:          req.Allergies,
		CreatedAt:          time.Now(),
	}

	if err := u.measurementRepo.Create(ctx, tx, record); err != nil {
		u.log.Warnf("Failed to append measurement record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionRecordAppend, "measurement_record", profile.ID.String(), record); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response := converter.MeasurementToResponse(record, profile.Name)

	// Artifact rendering happens after commit: a failed export never rolls
	// back a stored submission, it just leaves the path empty.
	if qrPath, err := u.exporter.QRCode(planText); err != nil {
		u.log.Warnf("Failed to render QR code: %+v", err)
	} else {
		response.QRCodePath = qrPath
	}

	if chartPath, err := u.exporter.BMIChart(req.WeightLbs, req.HeightFt, req.HeightIn); err != nil {
		u.log.Warnf("Failed to render BMI chart: %+v", err)
	} else {
		response.BMIChartPath = chartPath
	}

	return response, nil
}

// History returns the profile's full (timestamp, bmi) sequence in ascending
// order, plus a rendered progress chart when at least two points exist.
// An existing profile with no records yields an empty sequence, not an error.
func (u *measurementUsecase) History(ctx context.Context, profileName string) (*dto.HistoryResponse, error) {
	profile, err := u.profileRepo.FindByName(ctx, u.db, profileName)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUnknownProfile
	}

	records, err := u.measurementRepo.FindByProfileID(ctx, u.db, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to load history: %+v", err)
		return nil, err
	}

	points := converter.RecordsToHistoryPoints(records)
	response := &dto.HistoryResponse{
		ProfileName: profile.Name,
		Points:      converter.HistoryPointsToResponse(points),
	}

	if len(points) >= 2 {
		if chartPath, err := u.exporter.ProgressChart(points); err != nil {
			u.log.Warnf("Failed to render progress chart: %+v", err)
		} else {
			response.ProgressChartPath = chartPath
		}
	}

	return response, nil
}
