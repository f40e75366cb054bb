package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
)

type ActivityRepositoryImpl struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) activity.Repository {
	return &ActivityRepositoryImpl{db: db}
}

func (r *ActivityRepositoryImpl) Append(ctx context.Context, l *activity.Log) error {
	model, err := mappers.ActivityToModel(l)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return l.SetID(model.ID)
}

func (r *ActivityRepositoryImpl) ListByEntity(ctx context.Context, action activity.Action, entityID uint) ([]*activity.Log, error) {
	var rows []*models.ActivityLogModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("action = ? AND entity_id = ?", action.String(), entityID).
		Scopes(db.Chronological()).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	out := make([]*activity.Log, 0, len(rows))
	for _, m := range rows {
		l, err := mappers.ActivityToEntity(m)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
