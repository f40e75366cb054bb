package models

import (
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/constants"
)

type ProjectModel struct {
	ID        uint      `gorm:"primarykey"`
	Name      string    `gorm:"not null;size:200"`
	TeamID    *uint     `gorm:"index"`
	CreatedAt time.Time `gorm:"precision:3"`
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}
