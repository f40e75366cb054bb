package dto

import (
	"time"

	"github.com/orris-inc/complaintdesk/internal/domain/notification"
)

type NotificationDTO struct {
	ID        uint           `json:"id"`
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	IsRead    bool           `json:"is_read"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type ListNotificationsRequest struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListNotificationsResponse struct {
	Items    []*NotificationDTO `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:        n.ID(),
		Type:      n.Type().String(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		Metadata:  n.Metadata(),
		CreatedAt: n.CreatedAt(),
	}
}

func ToNotificationDTOList(items []*notification.Notification) []*NotificationDTO {
	out := make([]*NotificationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, ToNotificationDTO(n))
	}
	return out
}
