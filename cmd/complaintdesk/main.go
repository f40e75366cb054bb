package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/complaintdesk/internal/interfaces/cli/migrate"
	"github.com/orris-inc/complaintdesk/internal/interfaces/cli/relay"
	"github.com/orris-inc/complaintdesk/internal/interfaces/cli/server"
	"github.com/orris-inc/complaintdesk/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "complaintdesk",
		Short: "Complaint Desk - client complaint tracking",
		Long:  `Complaint Desk tracks client complaints from submission to closure, with assignment, responses and notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		relay.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
