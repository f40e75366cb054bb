package usecases

import (
	"context"
	stderrors "errors"

	"github.com/orris-inc/complaintdesk/internal/application/notification/dto"
	"github.com/orris-inc/complaintdesk/internal/domain/notification"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

type MarkReadUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewMarkReadUseCase(
	repo notification.NotificationRepository,
	logger logger.Interface,
) *MarkReadUseCase {
	return &MarkReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute flips isRead. Another user's notification is reported as missing.
func (uc *MarkReadUseCase) Execute(ctx context.Context, notificationID, userID uint) (*dto.NotificationDTO, error) {
	if notificationID == 0 || userID == 0 {
		return nil, errors.NewValidationError("notification ID and user ID are required")
	}

	n, err := uc.repo.GetByID(ctx, notificationID)
	if err != nil {
		if stderrors.Is(err, notification.ErrNotificationNotFound) {
			return nil, errors.NewNotFoundError("notification not found")
		}
		uc.logger.Errorw("failed to get notification", "id", notificationID, "error", err)
		return nil, errors.NewPersistenceError("failed to get notification", err.Error())
	}

	if !n.BelongsTo(userID) {
		uc.logger.Warnw("notification access by non-owner", "id", notificationID, "user_id", userID)
		return nil, errors.NewNotFoundError("notification not found")
	}

	if n.MarkRead() {
		if err := uc.repo.MarkRead(ctx, n.ID()); err != nil {
			uc.logger.Errorw("failed to mark notification as read", "id", notificationID, "error", err)
			return nil, errors.NewPersistenceError("failed to mark notification as read", err.Error())
		}
		uc.logger.Infow("notification marked as read", "id", notificationID, "user_id", userID)
	}

	return dto.ToNotificationDTO(n), nil
}
