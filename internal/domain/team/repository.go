package team

import (
	"context"
	"errors"
)

var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrMemberNotFound  = errors.New("team member not found")
	ErrDuplicateMember = errors.New("user is already a member of the team")
)

type Repository interface {
	Create(ctx context.Context, t *Team) error
	GetByID(ctx context.Context, id uint) (*Team, error)

	// AddMember returns ErrDuplicateMember when (teamID, userID) exists.
	AddMember(ctx context.Context, m *Member) error
	GetMember(ctx context.Context, teamID, userID uint) (*Member, error)
	RemoveMember(ctx context.Context, teamID, userID uint) error
	ListMembers(ctx context.Context, teamID uint) ([]*Member, error)
}
