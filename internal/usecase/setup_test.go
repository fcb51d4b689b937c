package usecase

import (
	"io"
	"math/rand"
	"testing"

	"nutritional-planner/config"
	"nutritional-planner/internal/domain/entity"
	"nutritional-planner/internal/export"
	"nutritional-planner/internal/repository"
	"nutritional-planner/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestEnv wires the usecases against an in-memory sqlite store and an
// exporter writing into the test's temp dir. Each test gets a fresh store.
func newTestEnv(t *testing.T) (ProfileUsecase, MeasurementUsecase) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&entity.Profile{}, &entity.MeasurementRecord{}, &entity.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	exporter, err := export.NewExporter(config.ExportConfig{Dir: t.TempDir()}, log)
	if err != nil {
		t.Fatalf("failed to create exporter: %v", err)
	}

	profileRepo := repository.NewProfileRepository()
	measurementRepo := repository.NewMeasurementRepository()
	auditRepo := repository.NewAuditLogRepository()

	planService := service.NewPlanService(rand.New(rand.NewSource(1)))
	auditService := service.NewAuditService(log, auditRepo)

	profileUsecase := NewProfileUsecase(db, log, profileRepo, measurementRepo, auditService)
	measurementUsecase := NewMeasurementUsecase(db, log, profileRepo, measurementRepo, planService, auditService, exporter)

	return profileUsecase, measurementUsecase
}
