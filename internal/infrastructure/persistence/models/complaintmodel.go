package models

import (
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/constants"
)

// ComplaintModel represents the database persistence model for complaints.
// Status changes go through a conditional UPDATE on (id, status).
type ComplaintModel struct {
	ID          uint       `gorm:"primarykey"`
	Title       string     `gorm:"not null;size:200"`
	Description string     `gorm:"type:text;not null"`
	Category    string     `gorm:"not null;size:20"`
	Status      string     `gorm:"not null;size:20;index:idx_complaint_status"`
	Priority    string     `gorm:"not null;size:20"`
	ClientID    uint       `gorm:"not null;index"`
	AssigneeID  *uint      `gorm:"index"`
	ProjectID   uint       `gorm:"not null;index"`
	Version     int        `gorm:"not null;default:1"`
	CreatedAt   time.Time  `gorm:"precision:3;index"`
	UpdatedAt   time.Time  `gorm:"precision:3"`
	ResolvedAt  *time.Time `gorm:"precision:3"`
	ClosedAt    *time.Time `gorm:"precision:3"`
}

func (ComplaintModel) TableName() string {
	return constants.TableComplaints
}

// ComplaintHistoryModel is append-only.
type ComplaintHistoryModel struct {
	ID          uint      `gorm:"primarykey"`
	ComplaintID uint      `gorm:"not null;index:idx_history_complaint_created"`
	Status      string    `gorm:"not null;size:20"`
	Message     *string   `gorm:"size:2000"`
	UserID      uint      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"precision:3;index:idx_history_complaint_created"`
}

func (ComplaintHistoryModel) TableName() string {
	return constants.TableComplaintHistory
}
