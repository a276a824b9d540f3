package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chamados/servicedesk/internal/interfaces/cli/migrate"
	"github.com/chamados/servicedesk/internal/interfaces/cli/server"
	"github.com/chamados/servicedesk/internal/interfaces/cli/user"
	"github.com/chamados/servicedesk/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "servicedesk",
		Short: "Service desk - helpdesk ticket tracking",
		Long:  `servicedesk runs the helpdesk API and web UI, manages the database schema and offers login administration commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
