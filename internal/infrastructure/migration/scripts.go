package migration

import (
	"embed"
	"fmt"

	"gorm.io/gorm"
)

// scriptsFS holds one directory of SQL scripts per tool and dialect:
// scripts/goose/<dialect> and scripts/migrate/<dialect>.
//
//go:embed scripts
var scriptsFS embed.FS

// dialectOf maps the gorm dialector to the dialect name both migration tools use.
func dialectOf(db *gorm.DB) (string, error) {
	switch name := db.Dialector.Name(); name {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migration scripts for dialect %q", name)
	}
}
