package models

import (
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/constants"
)

type TeamModel struct {
	ID        uint      `gorm:"primarykey"`
	Name      string    `gorm:"not null;size:200"`
	CreatedAt time.Time `gorm:"precision:3"`
}

func (TeamModel) TableName() string {
	return constants.TableTeams
}

// TeamMemberModel is unique on (team_id, user_id).
type TeamMemberModel struct {
	ID        uint      `gorm:"primarykey"`
	TeamID    uint      `gorm:"not null;uniqueIndex:uk_team_member"`
	UserID    uint      `gorm:"not null;uniqueIndex:uk_team_member;index"`
	Role      string    `gorm:"not null;size:50"`
	CreatedAt time.Time `gorm:"precision:3"`
}

func (TeamMemberModel) TableName() string {
	return constants.TableTeamMembers
}
