package mappers

import (
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/outbox"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
)

func ActivityToModel(l *activity.Log) (*models.ActivityLogModel, error) {
	details, err := toJSON(l.Details())
	if err != nil {
		return nil, fmt.Errorf("failed to encode activity details: %w", err)
	}
	return &models.ActivityLogModel{
		ID:        l.ID(),
		UserID:    l.UserID(),
		Action:    l.Action().String(),
		EntityID:  l.EntityID(),
		Details:   details,
		CreatedAt: l.CreatedAt(),
	}, nil
}

func ActivityToEntity(m *models.ActivityLogModel) (*activity.Log, error) {
	details, err := fromJSON(m.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to decode activity %d details: %w", m.ID, err)
	}
	return activity.ReconstructLog(m.ID, m.UserID, activity.Action(m.Action), m.EntityID, details, m.CreatedAt.UTC()), nil
}

func OutboxToModel(e *outbox.Event) *models.OutboxEventModel {
	return &models.OutboxEventModel{
		ID:            e.ID(),
		EventID:       e.EventID(),
		EventType:     e.EventType(),
		AggregateID:   e.AggregateID(),
		StreamKey:     e.StreamKey(),
		Payload:       e.Payload(),
		Status:        e.Status().String(),
		Attempts:      e.Attempts(),
		LastError:     e.LastError(),
		NextAttemptAt: e.NextAttemptAt(),
		CreatedAt:     e.CreatedAt(),
		PublishedAt:   e.PublishedAt(),
	}
}

func OutboxToEntity(m *models.OutboxEventModel) *outbox.Event {
	return outbox.ReconstructEvent(
		m.ID,
		m.EventID,
		m.EventType,
		m.AggregateID,
		m.Payload,
		outbox.Status(m.Status),
		m.Attempts,
		m.LastError,
		m.CreatedAt.UTC(),
		utcPtr(m.PublishedAt),
		utcPtr(m.NextAttemptAt),
	)
}
