package team

import (
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
	"github.com/orris-inc/complaintdesk/internal/shared/id"
)

func NewMemberAddedEvent(t *Team, m *Member, actorID uint) *events.Event {
	return newMembershipEvent(events.TypeTeamAdded, t, m, actorID)
}

func NewMemberRemovedEvent(t *Team, m *Member, actorID uint) *events.Event {
	return newMembershipEvent(events.TypeTeamRemoved, t, m, actorID)
}

func newMembershipEvent(eventType string, t *Team, m *Member, actorID uint) *events.Event {
	return &events.Event{
		EventID:     id.NewEventID(),
		EventType:   eventType,
		AggregateID: t.ID(),
		ActorID:     actorID,
		OccurredAt:  biztime.NowUTC(),
		Team: &events.TeamRef{
			TeamID:   t.ID(),
			TeamName: t.Name(),
			UserID:   m.UserID(),
			Role:     m.Role(),
		},
	}
}
