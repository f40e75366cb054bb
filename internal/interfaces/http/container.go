package http

import (
	"context"
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	activityApp "github.com/orris-inc/complaintdesk/internal/application/activity"
	notificationApp "github.com/orris-inc/complaintdesk/internal/application/notification"
	outboxApp "github.com/orris-inc/complaintdesk/internal/application/outbox"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/auth"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/config"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/metrics"
	permissionInfra "github.com/orris-inc/complaintdesk/internal/infrastructure/permission"
	"github.com/orris-inc/complaintdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
	"github.com/orris-inc/complaintdesk/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers, and the outbox relay. Shutdown releases what it opened.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware

	// Services
	txManager    *db.TransactionManager
	markdown     markdown.MarkdownService
	jwtSvc       *auth.JWTService
	enforcer     *permissionInfra.Enforcer
	recorder     *activityApp.Recorder
	outboxWriter *outboxApp.Writer
	eventBus     *events.InMemoryEventDispatcher
	dispatcher   *notificationApp.Dispatcher
	relay        *outboxApp.Relay

	registry *prometheus.Registry
	metrics  *metrics.Metrics

	closers []func() error
}

// NewContainer wires every component against db. Optional backends (Redis,
// Kafka, SMTP) are connected only when configured.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initMetrics()
	if err := c.initRedis(ctx); err != nil {
		return nil, err
	}
	c.initRepositories()
	if err := c.initServices(); err != nil {
		c.Shutdown()
		return nil, err
	}
	c.initMiddleware()
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

// Relay returns the outbox relay. The caller runs it.
func (c *Container) Relay() *outboxApp.Relay {
	return c.relay
}

func (c *Container) JWTService() *auth.JWTService {
	return c.jwtSvc
}

// Shutdown closes the optional backends in reverse order of opening.
func (c *Container) Shutdown() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			c.log.Errorw("failed to close component", "error", err)
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return stderrors.Join(errs...)
}
