// Package seeds holds the records written into an empty store on first use.
package seeds

import (
	"time"

	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/config"
)

const AdminSeedID int64 = 1

// AdminUsers returns the users store content for a fresh install: a single active administrator.
func AdminUsers(cfg config.BootstrapConfig, now time.Time) []models.UserModel {
	name, login, password := cfg.AdminName, cfg.AdminLogin, cfg.AdminPassword
	if name == "" {
		name = "Administrator"
	}
	if login == "" {
		login = "admin"
	}
	if password == "" {
		password = "admin"
	}
	active := true
	return []models.UserModel{{
		ID:        AdminSeedID,
		Name:      name,
		Login:     login,
		Password:  password,
		Role:      authorization.RoleAdmin.String(),
		Active:    &active,
		CreatedAt: now,
		UpdatedAt: now,
	}}
}
