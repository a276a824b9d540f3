package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

// AutoMigrateModels lists the tables gorm manages directly.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.StoreDocumentModel{},
	}
}

// GormAutoMigrateStrategy creates tables from the model structs. Used by `server --auto-migrate`.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.gorm")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	s.logger.Infow("auto-migration completed", "models", len(AutoMigrateModels()))
	return nil
}

// MigrateDown drops the managed tables; any positive step count drops them all.
func (s *GormAutoMigrateStrategy) MigrateDown(db *gorm.DB, steps int) error {
	if steps <= 0 {
		return nil
	}
	if err := db.Migrator().DropTable(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	s.logger.Infow("auto-migrated tables dropped")
	return nil
}

// Version is 1 once the documents table exists.
func (s *GormAutoMigrateStrategy) Version(db *gorm.DB) (int64, error) {
	if db.Migrator().HasTable(&models.StoreDocumentModel{}) {
		return 1, nil
	}
	return 0, nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return StrategyAutoMigrate
}
