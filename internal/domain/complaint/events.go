package complaint

import (
	vo "github.com/orris-inc/complaintdesk/internal/domain/complaint/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/shared/id"
)

func (c *Complaint) ref() *events.ComplaintRef {
	ref := &events.ComplaintRef{
		ID:        c.id,
		ProjectID: c.projectID,
		ClientID:  c.clientID,
		Title:     c.title,
		ToStatus:  c.status.String(),
	}
	if c.assigneeID != nil {
		v := *c.assigneeID
		ref.AssigneeID = &v
	}
	return ref
}

func (c *Complaint) newEvent(eventType string, actorID uint) *events.Event {
	return &events.Event{
		EventID:     id.NewEventID(),
		EventType:   eventType,
		AggregateID: c.id,
		ActorID:     actorID,
		OccurredAt:  c.updatedAt,
		Complaint:   c.ref(),
	}
}

func NewSubmittedEvent(c *Complaint) *events.Event {
	return c.newEvent(events.TypeComplaintSubmitted, c.clientID)
}

// NewStatusChangedEvent raises RESOLVED for a resolution and STATUS_UPDATED
// for every other transition.
func NewStatusChangedEvent(c *Complaint, from vo.ComplaintStatus, actorID uint, message *string) *events.Event {
	eventType := events.TypeStatusUpdated
	if c.status.IsResolved() {
		eventType = events.TypeResolved
	}
	evt := c.newEvent(eventType, actorID)
	evt.Complaint.FromStatus = from.String()
	if message != nil {
		evt.Message = *message
	}
	return evt
}

func NewAssignedEvent(c *Complaint, actorID uint) *events.Event {
	return c.newEvent(events.TypeAssigned, actorID)
}

func NewResponseAddedEvent(c *Complaint, responseID, authorID uint, excerpt string) *events.Event {
	evt := c.newEvent(events.TypeNewResponse, authorID)
	evt.Complaint.ResponseID = responseID
	evt.Message = excerpt
	return evt
}
