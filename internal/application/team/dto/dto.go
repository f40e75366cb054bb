package dto

import (
	"time"

	"github.com/orris-inc/complaintdesk/internal/domain/team"
)

type MemberDTO struct {
	ID        uint      `json:"id"`
	TeamID    uint      `json:"team_id"`
	UserID    uint      `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func ToMemberDTO(m *team.Member) *MemberDTO {
	if m == nil {
		return nil
	}
	return &MemberDTO{
		ID:        m.ID(),
		TeamID:    m.TeamID(),
		UserID:    m.UserID(),
		Role:      m.Role(),
		CreatedAt: m.CreatedAt(),
	}
}
