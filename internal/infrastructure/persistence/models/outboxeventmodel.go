package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/orris-inc/complaintdesk/internal/shared/constants"
)

type OutboxEventModel struct {
	ID            uint           `gorm:"primarykey"`
	EventID       string         `gorm:"size:36;not null;uniqueIndex"`
	EventType     string         `gorm:"size:50;not null"`
	AggregateID   uint           `gorm:"not null"`
	StreamKey     string         `gorm:"size:64;not null;index"`
	Payload       datatypes.JSON `gorm:"type:json;not null"`
	Status        string         `gorm:"size:20;not null;index"`
	Attempts      int            `gorm:"not null;default:0"`
	LastError     string         `gorm:"type:text"`
	NextAttemptAt *time.Time     `gorm:"precision:3"`
	ClaimedBy     string         `gorm:"size:36;not null;default:''"`
	ClaimedUntil  *time.Time     `gorm:"precision:3"`
	CreatedAt     time.Time      `gorm:"precision:3"`
	PublishedAt   *time.Time     `gorm:"precision:3"`
}

func (OutboxEventModel) TableName() string {
	return constants.TableOutboxEvents
}
