package http

import (
	"fmt"

	authUsecases "github.com/chamados/servicedesk/internal/application/auth/usecases"
	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/infrastructure/auth"
	"github.com/chamados/servicedesk/internal/infrastructure/email"
	"github.com/chamados/servicedesk/internal/infrastructure/metrics"
	"github.com/chamados/servicedesk/internal/infrastructure/permission"
	"github.com/chamados/servicedesk/internal/infrastructure/upload"
	"github.com/chamados/servicedesk/internal/shared/services/markdown"
)

// services holds the infrastructure services shared by use cases and middlewares.
type services struct {
	jwtSvc       *auth.JWTService
	enforcer     *permission.Enforcer
	loginMetrics *metrics.LoginMetrics
	uploads      *upload.Store
	markdown     markdown.MarkdownService
	// nil when lockout alerts are disabled
	notifier authUsecases.LockoutNotifier
	policy   loginguard.Policy
}

func (c *Container) initServices() error {
	enforcer, err := permission.NewEnforcer(c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}

	loginMetrics, err := metrics.NewLoginMetrics(c.registry)
	if err != nil {
		return fmt.Errorf("failed to register login metrics: %w", err)
	}
	httpMetrics, err := metrics.NewHTTPMetrics(c.registry)
	if err != nil {
		return fmt.Errorf("failed to register http metrics: %w", err)
	}
	c.httpMetrics = httpMetrics

	throttle := c.cfg.Auth.Throttle
	c.svcs = &services{
		jwtSvc:       auth.NewJWTService(c.cfg.Auth.JWTSecret, c.cfg.Auth.TokenTTL(), c.clock),
		enforcer:     enforcer,
		loginMetrics: loginMetrics,
		uploads: upload.NewStore(
			c.cfg.Uploads.Dir,
			c.cfg.Uploads.MaxFileBytes(),
			c.cfg.Uploads.MaxFiles,
			c.clock,
			c.log.Named("uploads"),
		),
		markdown: markdown.NewMarkdownService(),
		policy: loginguard.Policy{
			MaxAttempts: throttle.MaxAttempts,
			Window:      throttle.Window(),
			Lockout:     throttle.Lockout(),
		},
	}

	if c.cfg.Email.Enabled && len(c.cfg.Email.AlertRecipients) > 0 {
		c.svcs.notifier = email.NewSMTPEmailService(c.cfg.Email)
		c.log.Infow("lockout alerts enabled", "recipients", len(c.cfg.Email.AlertRecipients))
	}

	return nil
}
