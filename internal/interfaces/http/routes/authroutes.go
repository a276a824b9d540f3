package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/infrastructure/permission"
	"github.com/chamados/servicedesk/internal/interfaces/http/handlers"
	"github.com/chamados/servicedesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler          *handlers.AuthHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAuthRoutes configures /api/auth. Login and logout are public.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthHandler.Logout)
		auth.GET("/check", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Check)

		auth.GET("/login-events",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceLoginAudit, permission.ActionRead),
			cfg.AuthHandler.ListLoginEvents)
		auth.GET("/lockouts",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceLockout, permission.ActionRead),
			cfg.AuthHandler.ListLockouts)
		auth.POST("/lockouts/:login/unlock",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceLockout, permission.ActionUnlock),
			cfg.AuthHandler.UnlockLogin)
	}
}
