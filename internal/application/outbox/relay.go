package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orris-inc/complaintdesk/internal/domain/outbox"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultBatchSize    = 100
	defaultMaxAttempts  = 10
	defaultClaimTTL     = 30 * time.Second
	defaultRetryBase    = 2 * time.Second
	defaultRetryMax     = 5 * time.Minute
	maxLastErrorLength  = 1000
)

// Publisher forwards relayed events to an external stream.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
	PublishDLQ(ctx context.Context, key, value []byte) error
}

// Metrics receives relay outcomes.
type Metrics interface {
	EventPublished(eventType string)
	EventFailed(eventType string, dead bool)
}

type RelayConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	ClaimTTL     time.Duration
	// RetryBase doubles per failed attempt up to RetryMax.
	RetryBase time.Duration
	RetryMax  time.Duration
}

// DeadLetter is the DLQ message body.
type DeadLetter struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	Attempts  int             `json:"attempts"`
	Error     string          `json:"error"`
	FailedAt  time.Time       `json:"failed_at"`
}

// Relay drains the outbox in id order. Run each Relay from a single
// goroutine; several relays, in one process or many, share the table through
// batch leases.
type Relay struct {
	repo       outbox.Repository
	dispatcher events.Dispatcher
	publisher  Publisher
	metrics    Metrics
	logger     logger.Interface
	cfg        RelayConfig
	owner      string
	now        func() time.Time
	nudge      chan struct{}
}

// NewRelay builds a relay. publisher and metrics may be nil.
func NewRelay(
	repo outbox.Repository,
	dispatcher events.Dispatcher,
	publisher Publisher,
	metrics Metrics,
	cfg RelayConfig,
	log logger.Interface,
) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.ClaimTTL <= 0 {
		cfg.ClaimTTL = defaultClaimTTL
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = defaultRetryBase
	}
	if cfg.RetryMax < cfg.RetryBase {
		cfg.RetryMax = max(defaultRetryMax, cfg.RetryBase)
	}
	return &Relay{
		repo:       repo,
		dispatcher: dispatcher,
		publisher:  publisher,
		metrics:    metrics,
		logger:     log,
		cfg:        cfg,
		owner:      uuid.NewString(),
		now:        biztime.NowUTC,
		nudge:      make(chan struct{}, 1),
	}
}

// Nudge requests an immediate poll. It never blocks.
func (r *Relay) Nudge() {
	select {
	case r.nudge <- struct{}{}:
	default:
	}
}

func (r *Relay) Run(ctx context.Context) error {
	r.logger.Infow("outbox relay starting",
		"poll_interval", r.cfg.PollInterval,
		"batch_size", r.cfg.BatchSize,
		"max_attempts", r.cfg.MaxAttempts,
		"claim_ttl", r.cfg.ClaimTTL,
		"owner", r.owner,
		"kafka", r.publisher != nil,
	)

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	r.drain(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logger.Infow("outbox relay shutting down")
			return ctx.Err()
		case <-ticker.C:
			r.drain(ctx)
		case <-r.nudge:
			r.drain(ctx)
		}
	}
}

// drain processes full batches until the backlog is empty or a batch is
// held back by failures.
func (r *Relay) drain(ctx context.Context) {
	for ctx.Err() == nil {
		stats, err := r.ProcessBatch(ctx)
		if err != nil {
			r.logger.Warnw("failed to process outbox batch", "error", err)
			return
		}
		if stats.Fetched < r.cfg.BatchSize || stats.Failed > 0 || stats.Published == 0 {
			return
		}
	}
}

// BatchStats summarizes one ProcessBatch call.
type BatchStats struct {
	Fetched   int
	Published int
	Failed    int
	Skipped   int
}

// ProcessBatch claims and delivers one batch. After an event fails, later
// events of the same aggregate are released unattempted and stay behind it
// until its retry succeeds, so their relative order is kept.
func (r *Relay) ProcessBatch(ctx context.Context) (BatchStats, error) {
	var stats BatchStats

	now := r.now()
	rows, err := r.repo.ClaimDeliverable(ctx, outbox.Claim{
		Owner: r.owner,
		Now:   now,
		Until: now.Add(r.cfg.ClaimTTL),
	}, r.cfg.BatchSize)
	if err != nil {
		return stats, fmt.Errorf("failed to claim deliverable outbox events: %w", err)
	}
	stats.Fetched = len(rows)

	blocked := make(map[string]bool)
	var skipped []uint
	defer func() {
		// Unattempted rows would otherwise wait for the lease to run out.
		if err := r.repo.Release(context.WithoutCancel(ctx), r.owner, skipped); err != nil {
			r.logger.Warnw("failed to release skipped outbox events", "count", len(skipped), "error", err)
		}
	}()

	for i, row := range rows {
		if ctx.Err() != nil {
			for _, rest := range rows[i:] {
				skipped = append(skipped, rest.ID())
			}
			return stats, ctx.Err()
		}

		key := row.StreamKey()
		if blocked[key] {
			stats.Skipped++
			skipped = append(skipped, row.ID())
			continue
		}

		if err := r.deliver(ctx, row); err != nil {
			blocked[key] = true
			stats.Failed++
			r.fail(ctx, row, err)
			continue
		}
		stats.Published++
	}

	if stats.Fetched > 0 {
		r.logger.Debugw("outbox batch processed",
			"fetched", stats.Fetched,
			"published", stats.Published,
			"failed", stats.Failed,
			"skipped", stats.Skipped,
		)
	}
	return stats, nil
}

var errUndecodable = errors.New("undecodable outbox payload")

func (r *Relay) deliver(ctx context.Context, row *outbox.Event) error {
	evt, err := row.Decode()
	if err != nil {
		return fmt.Errorf("%w: %v", errUndecodable, err)
	}

	if err := r.dispatcher.Dispatch(ctx, evt); err != nil {
		return fmt.Errorf("dispatch failed: %w", err)
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, []byte(row.StreamKey()), row.Payload()); err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}
	}

	if err := r.repo.MarkPublished(ctx, row.ID(), biztime.NowUTC()); err != nil {
		return fmt.Errorf("failed to mark event published: %w", err)
	}

	if r.metrics != nil {
		r.metrics.EventPublished(row.EventType())
	}
	return nil
}

func (r *Relay) fail(ctx context.Context, row *outbox.Event, cause error) {
	attempts := row.Attempts() + 1
	dead := attempts >= r.cfg.MaxAttempts || errors.Is(cause, errUndecodable)

	msg := cause.Error()
	if len(msg) > maxLastErrorLength {
		msg = msg[:maxLastErrorLength]
	}

	r.logger.Warnw("outbox event delivery failed",
		"event_id", row.EventID(),
		"event_type", row.EventType(),
		"attempts", attempts,
		"dead", dead,
		"retry_in", r.retryDelay(attempts),
		"error", cause,
	)

	retryAt := r.now().Add(r.retryDelay(attempts))
	if err := r.repo.MarkFailed(ctx, row.ID(), msg, dead, retryAt); err != nil {
		r.logger.Errorw("failed to mark outbox event failed", "event_id", row.EventID(), "error", err)
	}

	if r.metrics != nil {
		r.metrics.EventFailed(row.EventType(), dead)
	}

	if dead && r.publisher != nil {
		r.publishDeadLetter(ctx, row, attempts, msg)
	}
}

// retryDelay is RetryBase doubled for every attempt after the first,
// capped at RetryMax.
func (r *Relay) retryDelay(attempts int) time.Duration {
	delay := r.cfg.RetryBase
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= r.cfg.RetryMax {
			return r.cfg.RetryMax
		}
	}
	return delay
}

func (r *Relay) publishDeadLetter(ctx context.Context, row *outbox.Event, attempts int, reason string) {
	payload := json.RawMessage(row.Payload())
	if !json.Valid(payload) {
		quoted, _ := json.Marshal(string(row.Payload()))
		payload = quoted
	}

	body, err := json.Marshal(DeadLetter{
		EventID:   row.EventID(),
		EventType: row.EventType(),
		Payload:   payload,
		Attempts:  attempts,
		Error:     reason,
		FailedAt:  biztime.NowUTC(),
	})
	if err != nil {
		r.logger.Errorw("failed to encode dead letter", "event_id", row.EventID(), "error", err)
		return
	}

	if err := r.publisher.PublishDLQ(ctx, []byte(row.EventID()), body); err != nil {
		r.logger.Errorw("failed to publish dead letter", "event_id", row.EventID(), "error", err)
	}
}
