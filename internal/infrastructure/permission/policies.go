package permission

import "github.com/chamados/servicedesk/internal/shared/authorization"

// Resources
const (
	ResourceTicket     = "ticket"
	ResourceAttachment = "attachment"
	ResourceUser       = "user"
	ResourceClient     = "client"
	ResourceCategory   = "category"
	ResourceGroup      = "group"
	ResourceLoginAudit = "login_audit"
	ResourceLockout    = "lockout"
)

// Actions
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionAssign = "assign"
	ActionUnlock = "unlock"
)

// DefaultPolicies maps each role to its resource/action pairs. Admin rows list only what an
// analyst cannot already do.
func DefaultPolicies() [][]string {
	analyst := authorization.RoleAnalyst.String()
	admin := authorization.RoleAdmin.String()

	return [][]string{
		{analyst, ResourceTicket, ActionRead},
		{analyst, ResourceTicket, ActionCreate},
		{analyst, ResourceTicket, ActionUpdate},
		{analyst, ResourceTicket, ActionAssign},
		{analyst, ResourceAttachment, ActionCreate},
		{analyst, ResourceClient, ActionRead},
		{analyst, ResourceCategory, ActionRead},
		{analyst, ResourceGroup, ActionRead},

		{admin, ResourceTicket, ActionDelete},
		{admin, ResourceAttachment, ActionDelete},
		{admin, ResourceUser, ActionRead},
		{admin, ResourceUser, ActionCreate},
		{admin, ResourceUser, ActionUpdate},
		{admin, ResourceUser, ActionDelete},
		{admin, ResourceUser, ActionUnlock},
		{admin, ResourceClient, ActionCreate},
		{admin, ResourceClient, ActionUpdate},
		{admin, ResourceClient, ActionDelete},
		{admin, ResourceCategory, ActionCreate},
		{admin, ResourceCategory, ActionUpdate},
		{admin, ResourceCategory, ActionDelete},
		{admin, ResourceGroup, ActionCreate},
		{admin, ResourceGroup, ActionUpdate},
		{admin, ResourceGroup, ActionDelete},
		{admin, ResourceLoginAudit, ActionRead},
		{admin, ResourceLockout, ActionRead},
		{admin, ResourceLockout, ActionUnlock},
	}
}

// RoleInheritance returns [member, parent] pairs.
func RoleInheritance() [][2]string {
	return [][2]string{
		{authorization.RoleAdmin.String(), authorization.RoleAnalyst.String()},
	}
}
