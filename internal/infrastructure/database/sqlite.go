package database

import (
	"fmt"

	"nutritional-planner/config"
	"nutritional-planner/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteConnection opens the local store and migrates the schema. The
// returned handle is owned by bootstrap for the process lifetime: opened
// once at startup and closed at shutdown, never per call.
func NewSQLiteConnection(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// One writer, one connection: sqlite serializes writes anyway.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.Profile{},
		&entity.MeasurementRecord{},
		&entity.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logrus.Info("Successfully connected to SQLite database")

	return db, nil
}
