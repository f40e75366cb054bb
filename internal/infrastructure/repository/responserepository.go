package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/complaintdesk/internal/domain/response"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
)

type ResponseRepositoryImpl struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) response.Repository {
	return &ResponseRepositoryImpl{db: db}
}

func (r *ResponseRepositoryImpl) Create(ctx context.Context, resp *response.Response) error {
	model := mappers.ResponseToModel(resp)
	if err := db.GetTxFromContext(ctx, r.db).Omit("Attachments").Create(model).Error; err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}
	if err := resp.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set response ID: %w", err)
	}
	return nil
}

func (r *ResponseRepositoryImpl) ListByComplaint(ctx context.Context, complaintID uint) ([]*response.Response, error) {
	var rows []*models.ResponseModel
	err := db.GetTxFromContext(ctx, r.db).
		Preload("Attachments", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Where("complaint_id = ?", complaintID).
		Scopes(db.Chronological()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	out := make([]*response.Response, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.ResponseToEntity(m))
	}
	return out, nil
}

type AttachmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) response.AttachmentRepository {
	return &AttachmentRepositoryImpl{db: db}
}

func (r *AttachmentRepositoryImpl) Create(ctx context.Context, a *response.Attachment) error {
	model := mappers.AttachmentToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	return a.SetID(model.ID)
}

// ListByComplaint returns the files attached to the complaint itself, not
// those attached to its responses.
func (r *AttachmentRepositoryImpl) ListByComplaint(ctx context.Context, complaintID uint) ([]*response.Attachment, error) {
	var rows []*models.AttachmentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("complaint_id = ?", complaintID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	out := make([]*response.Attachment, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.AttachmentToEntity(m))
	}
	return out, nil
}
