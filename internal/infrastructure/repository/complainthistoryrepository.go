package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
)

type ComplaintHistoryRepositoryImpl struct {
	db *gorm.DB
}

func NewComplaintHistoryRepository(db *gorm.DB) complaint.HistoryRepository {
	return &ComplaintHistoryRepositoryImpl{db: db}
}

func (r *ComplaintHistoryRepositoryImpl) Append(ctx context.Context, h *complaint.History) error {
	model := mappers.HistoryToModel(h)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append complaint history: %w", err)
	}
	if err := h.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set history ID: %w", err)
	}
	return nil
}

func (r *ComplaintHistoryRepositoryImpl) ListByComplaint(ctx context.Context, complaintID uint) ([]*complaint.History, error) {
	var rows []*models.ComplaintHistoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("complaint_id = ?", complaintID).
		Scopes(db.Chronological()).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaint history: %w", err)
	}
	return mappers.HistoryToEntities(rows), nil
}

// Latest returns nil without error when the complaint has no history.
func (r *ComplaintHistoryRepositoryImpl) Latest(ctx context.Context, complaintID uint) (*complaint.History, error) {
	var model models.ComplaintHistoryModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("complaint_id = ?", complaintID).
		Order("created_at DESC").
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest complaint history: %w", err)
	}
	return mappers.HistoryToEntity(&model), nil
}
