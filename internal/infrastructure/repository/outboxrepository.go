package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orris-inc/complaintdesk/internal/domain/outbox"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/complaintdesk/internal/shared/constants"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
)

// maxLastErrorLength bounds the stored failure text.
const maxLastErrorLength = 2000

var deliverableStatuses = []string{outbox.StatusPending.String(), outbox.StatusFailed.String()}

// leaseAvailable matches rows nobody holds, rows whose lease ran out and
// rows the caller already holds.
const leaseAvailable = "(claimed_until IS NULL OR claimed_until < ? OR claimed_by = ?)"

// streamNotHeld keeps a row back while an earlier undelivered row of its
// stream is leased to another relay or waiting out its retry delay.
var streamNotHeld = fmt.Sprintf(`NOT EXISTS (
	SELECT 1 FROM %[1]s earlier
	WHERE earlier.stream_key = %[1]s.stream_key
	AND earlier.id < %[1]s.id
	AND earlier.status IN ?
	AND ((earlier.next_attempt_at IS NOT NULL AND earlier.next_attempt_at > ?)
		OR (earlier.claimed_until IS NOT NULL AND earlier.claimed_until >= ? AND earlier.claimed_by <> ?)))`,
	constants.TableOutboxEvents)

type OutboxRepositoryImpl struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) outbox.Repository {
	return &OutboxRepositoryImpl{db: db}
}

func (r *OutboxRepositoryImpl) Append(ctx context.Context, e *outbox.Event) error {
	model := mappers.OutboxToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append outbox event: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *OutboxRepositoryImpl) ClaimDeliverable(ctx context.Context, claim outbox.Claim, limit int) ([]*outbox.Event, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := tx.Model(&models.OutboxEventModel{}).
		Where("status IN ?", deliverableStatuses).
		Where("(next_attempt_at IS NULL OR next_attempt_at <= ?)", claim.Now).
		Where(leaseAvailable, claim.Now, claim.Owner).
		Where(streamNotHeld, deliverableStatuses, claim.Now, claim.Now, claim.Owner).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list deliverable outbox events: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	// A relay that selected the same ids updates nothing once this lease commits.
	if err := tx.Model(&models.OutboxEventModel{}).
		Where("id IN ?", ids).
		Where(leaseAvailable, claim.Now, claim.Owner).
		Updates(map[string]any{
			"claimed_by":    claim.Owner,
			"claimed_until": claim.Until,
		}).Error; err != nil {
		return nil, fmt.Errorf("failed to claim outbox events: %w", err)
	}

	var rows []*models.OutboxEventModel
	if err := tx.
		Where("id IN ? AND claimed_by = ?", ids, claim.Owner).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load claimed outbox events: %w", err)
	}
	out := make([]*outbox.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.OutboxToEntity(m))
	}
	return out, nil
}

func (r *OutboxRepositoryImpl) MarkPublished(ctx context.Context, id uint, at time.Time) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OutboxEventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          outbox.StatusPublished.String(),
			"published_at":    at,
			"last_error":      "",
			"next_attempt_at": nil,
			"claimed_by":      "",
			"claimed_until":   nil,
		}).Error; err != nil {
		return fmt.Errorf("failed to mark outbox event published: %w", err)
	}
	return nil
}

func (r *OutboxRepositoryImpl) MarkFailed(ctx context.Context, id uint, lastError string, dead bool, retryAt time.Time) error {
	status := outbox.StatusFailed
	var nextAttemptAt any = retryAt
	if dead {
		status = outbox.StatusDead
		nextAttemptAt = nil
	}
	if len(lastError) > maxLastErrorLength {
		lastError = lastError[:maxLastErrorLength]
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OutboxEventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          status.String(),
			"attempts":        gorm.Expr("attempts + 1"),
			"last_error":      lastError,
			"next_attempt_at": nextAttemptAt,
			"claimed_by":      "",
			"claimed_until":   nil,
		}).Error; err != nil {
		return fmt.Errorf("failed to mark outbox event failed: %w", err)
	}
	return nil
}

func (r *OutboxRepositoryImpl) Release(ctx context.Context, owner string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OutboxEventModel{}).
		Where("id IN ? AND claimed_by = ?", ids, owner).
		Updates(map[string]any{
			"claimed_by":    "",
			"claimed_until": nil,
		}).Error; err != nil {
		return fmt.Errorf("failed to release outbox events: %w", err)
	}
	return nil
}

func (r *OutboxRepositoryImpl) CountByStatus(ctx context.Context, status outbox.Status) (int64, error) {
	var n int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OutboxEventModel{}).
		Where("status = ?", status.String()).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count outbox events: %w", err)
	}
	return n, nil
}
