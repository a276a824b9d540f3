package http

import (
	"fmt"

	"github.com/chamados/servicedesk/internal/interfaces/http/handlers"
	"github.com/chamados/servicedesk/internal/interfaces/http/handlers/pages"
	referenceHandlers "github.com/chamados/servicedesk/internal/interfaces/http/handlers/reference"
	ticketHandlers "github.com/chamados/servicedesk/internal/interfaces/http/handlers/ticket"
	"github.com/chamados/servicedesk/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// Auth & Users
	authHandler *handlers.AuthHandler
	userHandler *handlers.UserHandler

	// Tickets
	ticketHandler *ticketHandlers.TicketHandler

	// Reference data
	clientHandler   *referenceHandlers.ClientHandler
	categoryHandler *referenceHandlers.CategoryHandler
	groupHandler    *referenceHandlers.GroupHandler

	// Web UI
	pageHandler *pages.PageHandler
}

func (c *Container) initHandlers() error {
	u := c.ucs
	log := c.log.Named("http")

	pageHandler, err := pages.NewPageHandler(log)
	if err != nil {
		return fmt.Errorf("failed to load pages: %w", err)
	}

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(u.loginUC, u.unlockLoginUC, u.loginEventsUC, u.listLockoutsUC, log),
		userHandler: handlers.NewUserHandler(
			u.listUsersUC, u.createUserUC, u.changePasswordUC, u.changeRoleUC,
			u.setActiveUC, u.deleteUserUC, u.unlockUserUC, log,
		),
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicketUC, u.getTicketUC, u.listTicketsUC, u.patchTicketUC, u.deleteTicketUC,
			u.addAttachmentsUC, u.removeAttachmentUC, u.addInteractionUC, u.assignTicketUC, log,
		),
		clientHandler:   referenceHandlers.NewClientHandler(u.listClientsUC, u.createClientUC, u.updateClientUC, u.deleteClientUC, log),
		categoryHandler: referenceHandlers.NewCategoryHandler(u.listCategoriesUC, u.createCategoryUC, u.updateCategoryUC, u.deleteCategoryUC, log),
		groupHandler:    referenceHandlers.NewGroupHandler(u.listGroupsUC, u.createGroupUC, u.updateGroupUC, u.deleteGroupUC, log),
		pageHandler:     pageHandler,
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.svcs.enforcer, log)

	return nil
}
