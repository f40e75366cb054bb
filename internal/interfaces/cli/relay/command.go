package relay

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orris-inc/complaintdesk/internal/infrastructure/config"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/database"
	httpRouter "github.com/orris-inc/complaintdesk/internal/interfaces/http"
	"github.com/orris-inc/complaintdesk/internal/shared/constants"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Run the outbox relay without the HTTP server",
		Long:  `Deliver committed outbox events to the notification dispatcher and, when configured, Kafka.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()
	log.Infow("starting outbox relay", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := httpRouter.NewContainer(ctx, database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	if err := container.Relay().Run(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
		return fmt.Errorf("outbox relay failed: %w", err)
	}

	log.Infow("outbox relay stopped")
	return nil
}
