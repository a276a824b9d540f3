package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/chamados/servicedesk/internal/infrastructure/config"
	"github.com/chamados/servicedesk/internal/infrastructure/metrics"
	"github.com/chamados/servicedesk/internal/infrastructure/storage"
	"github.com/chamados/servicedesk/internal/interfaces/http/middleware"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
	"github.com/chamados/servicedesk/internal/shared/utils"
)

// Container holds the storage handle, repositories, use cases and handlers behind the
// HTTP engine. It wires everything together and releases the storage on Shutdown.
type Container struct {
	// Core infrastructure
	engine   *gin.Engine
	cfg      *config.Config
	log      logger.Interface
	clock    clock.Clock
	storage  *storage.Handle
	registry *prometheus.Registry

	// Infrastructure services
	svcs *services

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	httpMetrics          *metrics.HTTPMetrics
}

// NewContainer opens the configured storage and wires every component on top of it.
// The clock is injected so that tests can drive token expiry and lockout windows.
func NewContainer(ctx context.Context, cfg *config.Config, clk clock.Clock, log logger.Interface) (*Container, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := utils.RegisterValidations(v); err != nil {
			return nil, fmt.Errorf("failed to register validations: %w", err)
		}
	}

	handle, err := storage.Open(ctx, cfg, clk, log)
	if err != nil {
		return nil, err
	}

	c := &Container{
		engine:   gin.New(),
		cfg:      cfg,
		log:      log,
		clock:    clk,
		storage:  handle,
		registry: prometheus.NewRegistry(),
	}

	// Section 1: Infrastructure - Tokens, Permissions, Metrics, Uploads
	if err := c.initServices(); err != nil {
		return nil, errors.Join(err, handle.Close())
	}

	// Section 2: Repositories over the storage backend
	c.initRepositories()

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers and middlewares
	if err := c.initHandlers(); err != nil {
		return nil, errors.Join(err, handle.Close())
	}

	return c, nil
}

// Engine returns the gin engine. SetupRoutes must have been called first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown closes the storage connection.
func (c *Container) Shutdown() error {
	if err := c.storage.Close(); err != nil {
		c.log.Errorw("failed to close storage", "error", err)
		return err
	}
	c.log.Infow("storage closed")
	return nil
}
