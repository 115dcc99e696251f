// Package db opens the local run-archive database. Every pipeline run
// records its counters there so past runs can be compared without
// re-reading output files.
package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/vedicqa/internal/platform/logger"
	"github.com/yungbote/vedicqa/internal/types"
)

type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteService(path string, log *logger.Logger) (*SQLiteService, error) {
	serviceLog := log.With("service", "SQLiteService")

	serviceLog.Info("Opening run archive...", "path", path)
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		serviceLog.Error("Failed to open run archive", "error", err)
		return nil, fmt.Errorf("open run archive: %w", err)
	}

	return &SQLiteService{db: gdb, log: serviceLog}, nil
}

func (s *SQLiteService) AutoMigrateAll() error {
	s.log.Info("Auto migrating archive tables...")
	if err := s.db.AutoMigrate(
		&types.PipelineRun{},
	); err != nil {
		s.log.Error("Failed to migrate archive tables", "error", err)
		return fmt.Errorf("migrate archive tables: %w", err)
	}
	s.log.Info("Archive tables migrated")
	return nil
}

func (s *SQLiteService) DB() *gorm.DB { return s.db }

func (s *SQLiteService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
