package http

import (
	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/domain/reference"
	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Every repository reads and writes its collection through the same backend.
type repositories struct {
	userRepo     user.Repository
	ticketRepo   ticket.Repository
	clientRepo   reference.ClientRepository
	categoryRepo reference.CategoryRepository
	groupRepo    reference.GroupRepository
	ledgerRepo   loginguard.LedgerRepository
	auditRepo    loginguard.AuditRepository
}

func (c *Container) initRepositories() {
	backend := c.storage.Backend
	log := c.log.Named("repository")

	c.repos = &repositories{
		userRepo:     repository.NewUserRepository(backend, c.cfg.Bootstrap, c.clock, log),
		ticketRepo:   repository.NewTicketRepository(backend, c.clock, log),
		clientRepo:   repository.NewClientRepository(backend, c.clock, log),
		categoryRepo: repository.NewCategoryRepository(backend, c.clock, log),
		groupRepo:    repository.NewGroupRepository(backend, c.clock, log),
		ledgerRepo:   repository.NewLoginAttemptRepository(backend),
		auditRepo:    repository.NewLoginAuditRepository(backend, c.cfg.Auth.AuditMaxEntries),
	}
}
