package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
)

type Action string

const (
	ActionComplaintSubmitted    Action = "complaint.submitted"
	ActionComplaintTransitioned Action = "complaint.transitioned"
	ActionComplaintAssigned     Action = "complaint.assigned"
	ActionComplaintUnassigned   Action = "complaint.unassigned"
	ActionComplaintResponded    Action = "complaint.responded"
	ActionTeamMemberAdded       Action = "team.member_added"
	ActionTeamMemberRemoved     Action = "team.member_removed"
)

func (a Action) String() string {
	return string(a)
}

// Log is one append-only audit row.
type Log struct {
	id        uint
	userID    uint
	action    Action
	entityID  uint
	details   map[string]any
	createdAt time.Time
}

func NewLog(userID uint, action Action, entityID uint, details map[string]any) (*Log, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	if entityID == 0 {
		return nil, fmt.Errorf("entity ID is required")
	}
	return &Log{
		userID:    userID,
		action:    action,
		entityID:  entityID,
		details:   details,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructLog(id, userID uint, action Action, entityID uint, details map[string]any, createdAt time.Time) *Log {
	return &Log{id: id, userID: userID, action: action, entityID: entityID, details: details, createdAt: createdAt}
}

func (l *Log) ID() uint                { return l.id }
func (l *Log) UserID() uint            { return l.userID }
func (l *Log) Action() Action          { return l.action }
func (l *Log) EntityID() uint          { return l.entityID }
func (l *Log) Details() map[string]any { return l.details }
func (l *Log) CreatedAt() time.Time    { return l.createdAt }

func (l *Log) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("activity log ID is already set")
	}
	l.id = id
	return nil
}

type Repository interface {
	Append(ctx context.Context, l *Log) error
	ListByEntity(ctx context.Context, action Action, entityID uint) ([]*Log, error)
}
