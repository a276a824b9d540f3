package http

import (
	authUsecases "github.com/chamados/servicedesk/internal/application/auth/usecases"
	referenceDto "github.com/chamados/servicedesk/internal/application/reference/dto"
	referenceUsecases "github.com/chamados/servicedesk/internal/application/reference/usecases"
	ticketUsecases "github.com/chamados/servicedesk/internal/application/ticket/usecases"
	userUsecases "github.com/chamados/servicedesk/internal/application/user/usecases"
	"github.com/chamados/servicedesk/internal/domain/reference"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth
	securityLog    *authUsecases.SecurityLog
	loginUC        *authUsecases.LoginUseCase
	unlockLoginUC  *authUsecases.UnlockLoginUseCase
	loginEventsUC  *authUsecases.ListLoginEventsUseCase
	listLockoutsUC *authUsecases.ListLockoutsUseCase

	// Users
	listUsersUC      *userUsecases.ListUsersUseCase
	createUserUC     *userUsecases.CreateUserUseCase
	changePasswordUC *userUsecases.ChangePasswordUseCase
	changeRoleUC     *userUsecases.ChangeRoleUseCase
	setActiveUC      *userUsecases.SetActiveUseCase
	deleteUserUC     *userUsecases.DeleteUserUseCase
	unlockUserUC     *userUsecases.UnlockUserUseCase

	// Tickets
	createTicketUC     *ticketUsecases.CreateTicketUseCase
	getTicketUC        *ticketUsecases.GetTicketUseCase
	listTicketsUC      *ticketUsecases.ListTicketsUseCase
	patchTicketUC      *ticketUsecases.PatchTicketUseCase
	deleteTicketUC     *ticketUsecases.DeleteTicketUseCase
	addAttachmentsUC   *ticketUsecases.AddAttachmentsUseCase
	removeAttachmentUC *ticketUsecases.RemoveAttachmentUseCase
	addInteractionUC   *ticketUsecases.AddInteractionUseCase
	assignTicketUC     *ticketUsecases.AssignTicketUseCase

	// Reference data
	listClientsUC    *referenceUsecases.ListUseCase[*reference.Client, referenceDto.ClientDTO]
	createClientUC   *referenceUsecases.CreateClientUseCase
	updateClientUC   *referenceUsecases.UpdateClientUseCase
	deleteClientUC   *referenceUsecases.DeleteUseCase[*reference.Client]
	listCategoriesUC *referenceUsecases.ListUseCase[*reference.Category, referenceDto.CategoryDTO]
	createCategoryUC *referenceUsecases.CreateCategoryUseCase
	updateCategoryUC *referenceUsecases.UpdateCategoryUseCase
	deleteCategoryUC *referenceUsecases.DeleteUseCase[*reference.Category]
	listGroupsUC     *referenceUsecases.ListUseCase[*reference.Group, referenceDto.GroupDTO]
	createGroupUC    *referenceUsecases.CreateGroupUseCase
	updateGroupUC    *referenceUsecases.UpdateGroupUseCase
	deleteGroupUC    *referenceUsecases.DeleteUseCase[*reference.Group]
}

func (c *Container) initUseCases() {
	r := c.repos
	s := c.svcs
	log := c.log

	ucs := &allUseCases{}

	// Auth
	ucs.securityLog = authUsecases.NewSecurityLog(r.auditRepo, s.loginMetrics, c.clock, log)
	ucs.loginUC = authUsecases.NewLoginUseCase(
		r.userRepo, r.ledgerRepo, ucs.securityLog, s.jwtSvc, s.notifier, s.policy, c.clock, log,
	)
	ucs.unlockLoginUC = authUsecases.NewUnlockLoginUseCase(r.ledgerRepo, ucs.securityLog, log)
	ucs.loginEventsUC = authUsecases.NewListLoginEventsUseCase(r.auditRepo, log)
	ucs.listLockoutsUC = authUsecases.NewListLockoutsUseCase(r.ledgerRepo, c.clock, log)

	// Users
	ucs.listUsersUC = userUsecases.NewListUsersUseCase(r.userRepo, log)
	ucs.createUserUC = userUsecases.NewCreateUserUseCase(r.userRepo, c.clock, log)
	ucs.changePasswordUC = userUsecases.NewChangePasswordUseCase(r.userRepo, c.clock, log)
	ucs.changeRoleUC = userUsecases.NewChangeRoleUseCase(r.userRepo, c.clock, log)
	ucs.setActiveUC = userUsecases.NewSetActiveUseCase(r.userRepo, c.clock, log)
	ucs.deleteUserUC = userUsecases.NewDeleteUserUseCase(r.userRepo, r.ledgerRepo, log)
	ucs.unlockUserUC = userUsecases.NewUnlockUserUseCase(r.userRepo, ucs.unlockLoginUC, log)

	// Tickets
	ucs.createTicketUC = ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, s.uploads, c.clock, log)
	ucs.getTicketUC = ticketUsecases.NewGetTicketUseCase(r.ticketRepo, s.markdown, log)
	ucs.listTicketsUC = ticketUsecases.NewListTicketsUseCase(r.ticketRepo, log)
	ucs.patchTicketUC = ticketUsecases.NewPatchTicketUseCase(r.ticketRepo, c.clock, log)
	ucs.deleteTicketUC = ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, s.uploads, log)
	ucs.addAttachmentsUC = ticketUsecases.NewAddAttachmentsUseCase(r.ticketRepo, s.uploads, c.clock, log)
	ucs.removeAttachmentUC = ticketUsecases.NewRemoveAttachmentUseCase(r.ticketRepo, s.uploads, c.clock, log)
	ucs.addInteractionUC = ticketUsecases.NewAddInteractionUseCase(r.ticketRepo, c.clock, log)
	ucs.assignTicketUC = ticketUsecases.NewAssignTicketUseCase(r.ticketRepo, r.userRepo, c.clock, log)

	// Reference data
	ucs.listClientsUC = referenceUsecases.NewListClientsUseCase(r.clientRepo, log)
	ucs.createClientUC = referenceUsecases.NewCreateClientUseCase(r.clientRepo, c.clock, log)
	ucs.updateClientUC = referenceUsecases.NewUpdateClientUseCase(r.clientRepo, c.clock, log)
	ucs.deleteClientUC = referenceUsecases.NewDeleteClientUseCase(r.clientRepo, log)
	ucs.listCategoriesUC = referenceUsecases.NewListCategoriesUseCase(r.categoryRepo, log)
	ucs.createCategoryUC = referenceUsecases.NewCreateCategoryUseCase(r.categoryRepo, c.clock, log)
	ucs.updateCategoryUC = referenceUsecases.NewUpdateCategoryUseCase(r.categoryRepo, c.clock, log)
	ucs.deleteCategoryUC = referenceUsecases.NewDeleteCategoryUseCase(r.categoryRepo, log)
	ucs.listGroupsUC = referenceUsecases.NewListGroupsUseCase(r.groupRepo, log)
	ucs.createGroupUC = referenceUsecases.NewCreateGroupUseCase(r.groupRepo, c.clock, log)
	ucs.updateGroupUC = referenceUsecases.NewUpdateGroupUseCase(r.groupRepo, c.clock, log)
	ucs.deleteGroupUC = referenceUsecases.NewDeleteGroupUseCase(r.groupRepo, log)

	c.ucs = ucs
}
