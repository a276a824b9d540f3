package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/shared/clock"
)

// DatabaseBackend keeps documents as rows of the store_documents table.
type DatabaseBackend struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewDatabaseBackend(db *gorm.DB, clk clock.Clock) *DatabaseBackend {
	return &DatabaseBackend{db: db, clock: clk}
}

func (b *DatabaseBackend) Load(ctx context.Context, name string) ([]byte, error) {
	var doc models.StoreDocumentModel
	err := b.db.WithContext(ctx).Where("name = ?", name).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", name, err)
	}
	return []byte(doc.Data), nil
}

func (b *DatabaseBackend) Save(ctx context.Context, name string, data []byte) error {
	doc := models.StoreDocumentModel{
		Name:      name,
		Data:      datatypes.JSON(data),
		UpdatedAt: b.clock.Now(),
	}
	err := b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("save document %s: %w", name, err)
	}
	return nil
}
