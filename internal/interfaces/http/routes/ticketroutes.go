package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/infrastructure/permission"
	tickethandlers "github.com/chamados/servicedesk/internal/interfaces/http/handlers/ticket"
	"github.com/chamados/servicedesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	allow := cfg.PermissionMiddleware.RequirePermission
	h := cfg.TicketHandler

	tickets := api.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		tickets.GET("", allow(permission.ResourceTicket, permission.ActionRead), h.ListTickets)
		tickets.POST("", allow(permission.ResourceTicket, permission.ActionCreate), h.CreateTicket)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/mine", allow(permission.ResourceTicket, permission.ActionRead), h.ListMyTickets)

		tickets.POST("/:id/attachments", allow(permission.ResourceAttachment, permission.ActionCreate), h.AddAttachments)
		tickets.DELETE("/:id/attachments/:storedName", allow(permission.ResourceAttachment, permission.ActionDelete), h.RemoveAttachment)
		tickets.POST("/:id/interactions", allow(permission.ResourceTicket, permission.ActionUpdate), h.AddInteraction)
		tickets.PUT("/:id/assignee", allow(permission.ResourceTicket, permission.ActionAssign), h.AssignTicket)

		tickets.GET("/:id", allow(permission.ResourceTicket, permission.ActionRead), h.GetTicket)
		tickets.PATCH("/:id", allow(permission.ResourceTicket, permission.ActionUpdate), h.PatchTicket)
		tickets.DELETE("/:id", allow(permission.ResourceTicket, permission.ActionDelete), h.DeleteTicket)
	}
}
