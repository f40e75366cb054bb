package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/orris-inc/complaintdesk/internal/shared/constants"
)

type ActivityLogModel struct {
	ID        uint           `gorm:"primarykey"`
	UserID    uint           `gorm:"not null;index"`
	Action    string         `gorm:"size:50;not null;index:idx_activity_entity"`
	EntityID  uint           `gorm:"not null;index:idx_activity_entity"`
	Details   datatypes.JSON `gorm:"type:json"`
	CreatedAt time.Time      `gorm:"precision:3"`
}

func (ActivityLogModel) TableName() string {
	return constants.TableActivityLogs
}
