package models

import (
	"time"

	"gorm.io/datatypes"
)

// StoreDocumentModel is one named JSON document when stores are kept in a SQL database.
type StoreDocumentModel struct {
	Name      string         `gorm:"primaryKey;size:64"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

func (StoreDocumentModel) TableName() string {
	return "store_documents"
}
