// Package user holds operator commands that work on the configured storage without the HTTP server.
package user

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	authUsecases "github.com/chamados/servicedesk/internal/application/auth/usecases"
	userUsecases "github.com/chamados/servicedesk/internal/application/user/usecases"
	"github.com/chamados/servicedesk/internal/infrastructure/config"
	"github.com/chamados/servicedesk/internal/infrastructure/repository"
	"github.com/chamados/servicedesk/internal/infrastructure/storage"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

// cliActor is recorded as the author of changes made from the command line.
var cliActor = authorization.Actor{Name: "cli", Role: authorization.RoleAdmin}

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User and login administration",
		Long:  `Inspect users and clear login locks directly on the configured storage backend.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List users",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, func(a *app) error {
					return a.list(cmd.Context(), cmd.OutOrStdout())
				})
			},
		},
		&cobra.Command{
			Use:   "lockouts",
			Short: "List logins that are currently locked",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, func(a *app) error {
					return a.lockouts(cmd.Context(), cmd.OutOrStdout())
				})
			},
		},
		&cobra.Command{
			Use:   "unlock <login>",
			Short: "Clear the login lock of a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, func(a *app) error {
					return a.unlock(cmd.Context(), cmd.OutOrStdout(), args[0])
				})
			},
		},
	)

	return cmd
}

// app is the slice of the service the user commands need.
type app struct {
	listUsers    userUsecases.ListUsersExecutor
	listLockouts authUsecases.ListLockoutsExecutor
	unlockLogin  authUsecases.UnlockLoginExecutor
}

func newApp(backend storage.Backend, cfg *config.Config, clk clock.Clock, log logger.Interface) *app {
	users := repository.NewUserRepository(backend, cfg.Bootstrap, clk, log)
	ledger := repository.NewLoginAttemptRepository(backend)
	audit := repository.NewLoginAuditRepository(backend, cfg.Auth.AuditMaxEntries)
	securityLog := authUsecases.NewSecurityLog(audit, nil, clk, log)

	return &app{
		listUsers:    userUsecases.NewListUsersUseCase(users, log),
		listLockouts: authUsecases.NewListLockoutsUseCase(ledger, clk, log),
		unlockLogin:  authUsecases.NewUnlockLoginUseCase(ledger, securityLog, log),
	}
}

func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()
	clk := clock.System()

	handle, err := storage.Open(cmd.Context(), cfg, clk, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = handle.Close()
	}()

	return fn(newApp(handle.Backend, cfg, clk, log))
}

func (a *app) list(ctx context.Context, out io.Writer) error {
	users, err := a.listUsers.Execute(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLOGIN\tNAME\tROLE\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Login, u.Name, u.Role, u.Active)
	}
	return w.Flush()
}

func (a *app) lockouts(ctx context.Context, out io.Writer) error {
	lockouts, err := a.listLockouts.Execute(ctx)
	if err != nil {
		return err
	}
	if len(lockouts) == 0 {
		fmt.Fprintln(out, "no locked logins")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LOGIN\tFAILURES\tBLOCKED UNTIL\tMINUTES LEFT")
	for _, l := range lockouts {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", l.Login, l.FailCount, l.BlockedUntil.Format("2006-01-02 15:04:05"), l.RemainingMinutes)
	}
	return w.Flush()
}

func (a *app) unlock(ctx context.Context, out io.Writer, login string) error {
	err := a.unlockLogin.Execute(ctx, authUsecases.UnlockLoginCommand{
		Login:     login,
		Actor:     cliActor,
		SourceIP:  "local",
		UserAgent: "servicedesk-cli",
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "login %q unlocked\n", login)
	return nil
}
