package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/infrastructure/permission"
	referencehandlers "github.com/chamados/servicedesk/internal/interfaces/http/handlers/reference"
	"github.com/chamados/servicedesk/internal/interfaces/http/middleware"
)

type ReferenceRouteConfig struct {
	ClientHandler        *referencehandlers.ClientHandler
	CategoryHandler      *referencehandlers.CategoryHandler
	GroupHandler         *referencehandlers.GroupHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// crudHandler is the shape shared by the reference data handlers.
type crudHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// SetupReferenceRoutes configures /api/clients, /api/categories and /api/groups.
func SetupReferenceRoutes(api *gin.RouterGroup, cfg *ReferenceRouteConfig) {
	setupCRUD(api.Group("/clients"), cfg, permission.ResourceClient, cfg.ClientHandler)
	setupCRUD(api.Group("/categories"), cfg, permission.ResourceCategory, cfg.CategoryHandler)
	setupCRUD(api.Group("/groups"), cfg, permission.ResourceGroup, cfg.GroupHandler)
}

func setupCRUD(group *gin.RouterGroup, cfg *ReferenceRouteConfig, resource string, h crudHandler) {
	allow := cfg.PermissionMiddleware.RequirePermission

	group.Use(cfg.AuthMiddleware.RequireAuth())
	{
		group.GET("", allow(resource, permission.ActionRead), h.List)
		group.POST("", allow(resource, permission.ActionCreate), h.Create)
		group.PUT("/:id", allow(resource, permission.ActionUpdate), h.Update)
		group.DELETE("/:id", allow(resource, permission.ActionDelete), h.Delete)
	}
}
