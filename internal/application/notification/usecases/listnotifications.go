package usecases

import (
	"context"

	"github.com/orris-inc/complaintdesk/internal/application/notification/dto"
	"github.com/orris-inc/complaintdesk/internal/domain/notification"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewListNotificationsUseCase(
	repo notification.NotificationRepository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error) {
	if req.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	page, pageSize := db.NormalizePage(req.Page, req.PageSize)

	items, total, err := uc.repo.List(ctx, notification.ListFilter{
		UserID:     req.UserID,
		UnreadOnly: req.UnreadOnly,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", req.UserID, "error", err)
		return nil, errors.NewPersistenceError("failed to list notifications", err.Error())
	}

	return &dto.ListNotificationsResponse{
		Items:    dto.ToNotificationDTOList(items),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
