package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/chamados/servicedesk/internal/interfaces/http/docs"
	"github.com/chamados/servicedesk/internal/interfaces/http/handlers/pages"
	"github.com/chamados/servicedesk/internal/interfaces/http/middleware"
	"github.com/chamados/servicedesk/internal/interfaces/http/routes"
	"github.com/chamados/servicedesk/internal/shared/utils"
	"github.com/chamados/servicedesk/internal/shared/version"
)

const maxMultipartMemory = 8 << 20

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.MaxMultipartMemory = maxMultipartMemory

	c.engine.Use(middleware.CustomLogger(c.log.Named("access")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.Metrics(c.httpMetrics))

	c.setupSystemRoutes()
	c.setupAPIRoutes()
	c.setupStaticRoutes()
	c.setupPageRoutes()
}

// setupSystemRoutes configures health, metrics and API documentation
func (c *Container) setupSystemRoutes() {
	c.engine.GET("/health", func(ctx *gin.Context) {
		utils.SuccessResponse(ctx, http.StatusOK, "", gin.H{"status": "ok", "version": version.String()})
	})
	c.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})))

	c.engine.GET("/openapi.json", func(ctx *gin.Context) {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", docs.OpenAPI)
	})
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.json")))
}

// setupAPIRoutes configures the JSON API under /api
func (c *Container) setupAPIRoutes() {
	api := c.engine.Group("/api")
	api.Use(middleware.SecurityHeaders())

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:          c.hdlrs.authHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:          c.hdlrs.userHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupReferenceRoutes(api, &routes.ReferenceRouteConfig{
		ClientHandler:        c.hdlrs.clientHandler,
		CategoryHandler:      c.hdlrs.categoryHandler,
		GroupHandler:         c.hdlrs.groupHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// setupStaticRoutes serves stored attachments and the UI assets
func (c *Container) setupStaticRoutes() {
	uploads := c.engine.Group("/uploads")
	uploads.Use(middleware.SecurityHeaders())
	uploads.Static("/", c.svcs.uploads.Dir())

	assets := c.engine.Group("/assets")
	assets.Use(middleware.SecurityHeaders())
	assets.StaticFS("/", pages.Assets())
}

// setupPageRoutes configures the HTML shells of the web UI
func (c *Container) setupPageRoutes() {
	p := c.hdlrs.pageHandler

	ui := c.engine.Group("")
	ui.Use(middleware.SecurityHeaders())
	{
		ui.GET("/login", p.Render(pages.PageLogin))
		ui.GET("/", p.Render(pages.PageHome))
		ui.GET("/tickets", p.Render(pages.PageTickets))
		ui.GET("/tickets/:id", p.TicketDetail)
		ui.GET("/my-tickets", p.Render(pages.PageMyTickets))
		ui.GET("/new-ticket", p.Render(pages.PageNewTicket))
		ui.GET("/users", p.Render(pages.PageUsers))
		ui.GET("/clients", p.Render(pages.PageClients))
		ui.GET("/categories", p.Render(pages.PageCategories))
		ui.GET("/groups", p.Render(pages.PageGroups))
		ui.GET("/login-events", p.Render(pages.PageLoginEvents))
		ui.GET("/lockouts", p.Render(pages.PageLockouts))
	}
}
