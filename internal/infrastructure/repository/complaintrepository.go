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
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

type ComplaintRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewComplaintRepository(db *gorm.DB, logger logger.Interface) complaint.ComplaintRepository {
	return &ComplaintRepositoryImpl{db: db, logger: logger}
}

func (r *ComplaintRepositoryImpl) Create(ctx context.Context, c *complaint.Complaint) error {
	model := mappers.ComplaintToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set complaint ID: %w", err)
	}
	return nil
}

func (r *ComplaintRepositoryImpl) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, complaint.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to get complaint by ID: %w", err)
	}
	return mappers.ComplaintToEntity(&model)
}

// CompareAndSwap writes the mutable columns only while the stored version
// still equals expectedVersion. Zero affected rows means another writer won.
func (r *ComplaintRepositoryImpl) CompareAndSwap(ctx context.Context, c *complaint.Complaint, expectedVersion int) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ComplaintModel{}).
		Where("id = ? AND version = ?", c.ID(), expectedVersion).
		Updates(map[string]any{
			"status":      c.Status().String(),
			"assignee_id": c.AssigneeID(),
			"version":     c.Version(),
			"updated_at":  c.UpdatedAt(),
			"resolved_at": c.ResolvedAt(),
			"closed_at":   c.ClosedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warnw("complaint compare-and-swap missed",
			"complaint_id", c.ID(),
			"expected_version", expectedVersion,
		)
		return complaint.ErrStatusConflict
	}
	return nil
}
