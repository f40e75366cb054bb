package handlers

import (
	"context"

	"github.com/orris-inc/complaintdesk/internal/application/notification/dto"
)

type listNotificationsUseCase interface {
	Execute(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error)
}

type markNotificationReadUseCase interface {
	Execute(ctx context.Context, notificationID, userID uint) (*dto.NotificationDTO, error)
}
