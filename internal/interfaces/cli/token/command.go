// Package token issues access tokens for users provisioned out of band.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/auth"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/config"
	"github.com/orris-inc/complaintdesk/internal/shared/constants"
)

var (
	env    string
	userID uint
	role   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long:  `Sign an access token for an existing user with the configured JWT secret.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().UintVar(&userID, "user-id", 0, "ID of the user the token is issued for (required)")
	cmd.Flags().StringVar(&role, "role", string(user.RoleClient), "Role claim (CLIENT, SUPPORT, ADMIN)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	signed, err := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes).
		Generate(userID, user.Role(role))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
