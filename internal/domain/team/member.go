package team

import (
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
)

// DefaultMemberRole is used when a membership is created without a role.
const DefaultMemberRole = "member"

// Member joins a user to a team. (teamID, userID) is unique.
// Role is the position inside the team and is unrelated to user.Role.
type Member struct {
	id        uint
	teamID    uint
	userID    uint
	role      string
	createdAt time.Time
}

func NewMember(teamID, userID uint, role string) (*Member, error) {
	if teamID == 0 {
		return nil, fmt.Errorf("team ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	role = strings.TrimSpace(role)
	if role == "" {
		role = DefaultMemberRole
	}
	if len(role) > 50 {
		return nil, fmt.Errorf("member role exceeds maximum length of 50 characters")
	}
	return &Member{
		teamID:    teamID,
		userID:    userID,
		role:      role,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructMember(id, teamID, userID uint, role string, createdAt time.Time) *Member {
	return &Member{id: id, teamID: teamID, userID: userID, role: role, createdAt: createdAt}
}

func (m *Member) ID() uint             { return m.id }
func (m *Member) TeamID() uint         { return m.teamID }
func (m *Member) UserID() uint         { return m.userID }
func (m *Member) Role() string         { return m.role }
func (m *Member) CreatedAt() time.Time { return m.createdAt }

func (m *Member) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("member ID is already set")
	}
	m.id = id
	return nil
}
