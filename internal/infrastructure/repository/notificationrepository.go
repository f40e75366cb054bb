package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orris-inc/complaintdesk/internal/domain/notification"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
)

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) notification.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

// CreateIfAbsent relies on the unique dedupe_key index. A conflicting insert
// is ignored and reported as not created.
func (r *NotificationRepositoryImpl) CreateIfAbsent(ctx context.Context, n *notification.Notification) (bool, error) {
	model, err := mappers.NotificationToModel(n)
	if err != nil {
		return false, err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "dedupe_key"}}, DoNothing: true}).
		Create(model)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := n.SetID(model.ID); err != nil {
		return false, fmt.Errorf("failed to set notification ID: %w", err)
	}
	return true, nil
}

func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification by ID: %w", err)
	}
	return mappers.NotificationToEntity(&model)
}

func (r *NotificationRepositoryImpl) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).Where("user_id = ?", filter.UserID)
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var rows []*models.NotificationModel
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	items, err := mappers.NotificationsToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	return nil
}
