package models

import (
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/constants"
)

type ResponseModel struct {
	ID          uint              `gorm:"primarykey"`
	ComplaintID uint              `gorm:"not null;index"`
	UserID      uint              `gorm:"not null"`
	Message     string            `gorm:"type:text;not null"`
	CreatedAt   time.Time         `gorm:"precision:3"`
	Attachments []AttachmentModel `gorm:"foreignKey:ResponseID"`
}

func (ResponseModel) TableName() string {
	return constants.TableResponses
}

// AttachmentModel belongs to exactly one of a complaint or a response.
type AttachmentModel struct {
	ID          uint      `gorm:"primarykey"`
	FileName    string    `gorm:"not null;size:255"`
	FileURL     string    `gorm:"not null;size:2048"`
	MimeType    string    `gorm:"not null;size:100"`
	Size        int64     `gorm:"not null"`
	ComplaintID *uint     `gorm:"index"`
	ResponseID  *uint     `gorm:"index"`
	CreatedAt   time.Time `gorm:"precision:3"`
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}
