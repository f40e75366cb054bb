package http

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	activityApp "github.com/orris-inc/complaintdesk/internal/application/activity"
	notificationApp "github.com/orris-inc/complaintdesk/internal/application/notification"
	outboxApp "github.com/orris-inc/complaintdesk/internal/application/outbox"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/auth"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/cache"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/email"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/messaging"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/metrics"
	permissionInfra "github.com/orris-inc/complaintdesk/internal/infrastructure/permission"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/ratelimit"
	"github.com/orris-inc/complaintdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/services/markdown"
)

func (c *Container) initMetrics() {
	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.metrics = metrics.New(c.registry)
}

// initRedis connects when Redis is enabled. Without it, notification dedupe
// falls back to process memory and write rate limiting is off.
func (c *Container) initRedis(ctx context.Context) error {
	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, using in-memory notification dedupe")
		return nil
	}

	client, err := cache.NewRedisClient(ctx, &c.cfg.Redis)
	if err != nil {
		return err
	}
	c.redis = client
	c.closers = append(c.closers, client.Close)
	c.log.Infow("redis connection established", "address", c.cfg.Redis.GetAddr())
	return nil
}

func (c *Container) initServices() error {
	c.txManager = db.NewTransactionManager(c.db)
	c.markdown = markdown.NewMarkdownService()
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permissionInfra.NewEnforcer(c.db, c.log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permissionInfra.InitDefaultPolicies(enforcer, c.log); err != nil {
		return err
	}
	c.enforcer = enforcer

	c.recorder = activityApp.NewRecorder(c.repos.activityRepo, c.log)
	c.outboxWriter = outboxApp.NewWriter(c.repos.outboxRepo, c.log)

	var deduper notificationApp.Deduper = notificationApp.NewMemoryDeduper(c.cfg.Notification.DedupeTTL)
	if c.redis != nil {
		deduper = cache.NewNotificationDeduper(c.redis, c.cfg.Notification.DedupeTTL)
	}

	var emailNotifier notificationApp.EmailNotifier
	if c.cfg.Email.Enabled() {
		emailNotifier = email.NewSMTPEmailService(email.SMTPConfigFrom(&c.cfg.Email), c.markdown, c.log.Named("email"))
	}

	c.dispatcher = notificationApp.NewDispatcher(
		c.repos.notificationRepo,
		c.repos.userRepo,
		c.repos.projectRepo,
		c.repos.teamRepo,
		deduper,
		emailNotifier,
		c.log.Named("notification"),
	)

	c.eventBus = events.NewInMemoryEventDispatcher(c.log)
	if err := c.dispatcher.Register(c.eventBus); err != nil {
		return fmt.Errorf("failed to register notification dispatcher: %w", err)
	}

	var publisher outboxApp.Publisher
	if c.cfg.Kafka.Enabled() {
		kafkaPublisher, err := messaging.NewKafkaPublisher(messaging.KafkaPublisherConfigFrom(&c.cfg.Kafka))
		if err != nil {
			return fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		c.closers = append(c.closers, kafkaPublisher.Close)
		publisher = kafkaPublisher
	}

	c.relay = outboxApp.NewRelay(
		c.repos.outboxRepo,
		c.eventBus,
		publisher,
		c.metrics,
		outboxApp.RelayConfig{
			PollInterval: c.cfg.Outbox.PollInterval,
			BatchSize:    c.cfg.Outbox.BatchSize,
			MaxAttempts:  c.cfg.Outbox.MaxAttempts,
			ClaimTTL:     c.cfg.Outbox.ClaimTTL,
			RetryBase:    c.cfg.Outbox.RetryBase,
			RetryMax:     c.cfg.Outbox.RetryMax,
		},
		c.log.Named("relay"),
	)
	c.outboxWriter.SetNudger(c.relay)

	return nil
}

func (c *Container) initMiddleware() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)

	if c.redis != nil && c.cfg.RateLimit.Enabled() {
		c.rateLimit = middleware.NewRateLimitMiddleware(
			ratelimit.NewRedisRateLimiter(c.redis),
			ratelimit.RateLimitConfig{
				RequestsPerMinute: c.cfg.RateLimit.RequestsPerMinute,
				RequestsPerHour:   c.cfg.RateLimit.RequestsPerHour,
				RequestsPerDay:    c.cfg.RateLimit.RequestsPerDay,
			},
			c.log,
		)
	}
}
