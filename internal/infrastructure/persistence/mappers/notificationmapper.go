package mappers

import (
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/notification"
	vo "github.com/orris-inc/complaintdesk/internal/domain/notification/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
)

func NotificationToEntity(m *models.NotificationModel) (*notification.Notification, error) {
	metadata, err := fromJSON(m.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to decode notification %d metadata: %w", m.ID, err)
	}
	n, err := notification.ReconstructNotification(
		m.ID,
		m.UserID,
		m.Message,
		vo.NotificationType(m.Type),
		m.IsRead,
		metadata,
		m.DedupeKey,
		m.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification %d: %w", m.ID, err)
	}
	return n, nil
}

func NotificationsToEntities(rows []*models.NotificationModel) ([]*notification.Notification, error) {
	out := make([]*notification.Notification, 0, len(rows))
	for _, m := range rows {
		n, err := NotificationToEntity(m)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func NotificationToModel(n *notification.Notification) (*models.NotificationModel, error) {
	metadata, err := toJSON(n.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to encode notification metadata: %w", err)
	}
	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Message:   n.Message(),
		Type:      n.Type().String(),
		IsRead:    n.IsRead(),
		Metadata:  metadata,
		DedupeKey: n.DedupeKey(),
		CreatedAt: n.CreatedAt(),
	}, nil
}
