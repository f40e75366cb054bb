package models

import (
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID        uint      `gorm:"primarykey"`
	Name      string    `gorm:"not null;size:100"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	Role      string    `gorm:"not null;size:20;index"`
	CreatedAt time.Time `gorm:"precision:3"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
