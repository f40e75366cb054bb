package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/orris-inc/complaintdesk/internal/shared/constants"
)

// NotificationModel is unique on dedupe_key so a redelivered event cannot
// produce a second row for the same recipient.
type NotificationModel struct {
	ID        uint           `gorm:"primarykey"`
	UserID    uint           `gorm:"not null;index:idx_user_read"`
	Message   string         `gorm:"size:1000;not null"`
	Type      string         `gorm:"size:50;not null"`
	IsRead    bool           `gorm:"not null;default:false;index:idx_user_read"`
	Metadata  datatypes.JSON `gorm:"type:json"`
	DedupeKey string         `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time      `gorm:"precision:3;index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
