package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/infrastructure/permission"
	"github.com/chamados/servicedesk/internal/interfaces/http/handlers"
	"github.com/chamados/servicedesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures /api/users. Every route is admin only.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	allow := cfg.PermissionMiddleware.RequirePermission
	h := cfg.UserHandler

	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", allow(permission.ResourceUser, permission.ActionRead), h.ListUsers)
		users.POST("", allow(permission.ResourceUser, permission.ActionCreate), h.CreateUser)

		users.PUT("/:id/password", allow(permission.ResourceUser, permission.ActionUpdate), h.ChangePassword)
		users.PUT("/:id/role", allow(permission.ResourceUser, permission.ActionUpdate), h.ChangeRole)
		users.PUT("/:id/active", allow(permission.ResourceUser, permission.ActionUpdate), h.SetActive)
		users.POST("/:id/unlock", allow(permission.ResourceUser, permission.ActionUnlock), h.UnlockUser)
		users.DELETE("/:id", allow(permission.ResourceUser, permission.ActionDelete), h.DeleteUser)
	}
}
