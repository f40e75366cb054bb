// Package events defines the domain event envelope shared by the complaint
// and team aggregates, and the in-process bus that fans events out to handlers.
package events

import (
	"context"
	"time"
)

// Event types. The names match the notification types they produce.
const (
	TypeComplaintSubmitted = "COMPLAINT_SUBMITTED"
	TypeStatusUpdated      = "STATUS_UPDATED"
	TypeResolved           = "RESOLVED"
	TypeAssigned           = "ASSIGNED"
	TypeNewResponse        = "NEW_RESPONSE"
	TypeTeamAdded          = "TEAM_ADDED"
	TypeTeamRemoved        = "TEAM_REMOVED"
)

// DomainEvent represents a domain event interface
type DomainEvent interface {
	GetEventID() string
	GetEventType() string
	GetAggregateID() uint
	GetOccurredAt() time.Time
}

// ComplaintRef is the complaint snapshot taken when the event was raised.
// Routing reads it instead of reloading the complaint, so recipients reflect
// the state at the time of the change.
type ComplaintRef struct {
	ID         uint   `json:"id"`
	ProjectID  uint   `json:"project_id"`
	ClientID   uint   `json:"client_id"`
	AssigneeID *uint  `json:"assignee_id,omitempty"`
	Title      string `json:"title"`
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status,omitempty"`
	ResponseID uint   `json:"response_id,omitempty"`
}

type TeamRef struct {
	TeamID   uint   `json:"team_id"`
	TeamName string `json:"team_name"`
	UserID   uint   `json:"user_id"`
	Role     string `json:"role,omitempty"`
}

// Event is the single envelope type carried through the outbox.
type Event struct {
	EventID     string        `json:"event_id"`
	EventType   string        `json:"event_type"`
	AggregateID uint          `json:"aggregate_id"`
	ActorID     uint          `json:"actor_id"`
	OccurredAt  time.Time     `json:"occurred_at"`
	Message     string        `json:"message,omitempty"`
	Complaint   *ComplaintRef `json:"complaint,omitempty"`
	Team        *TeamRef      `json:"team,omitempty"`
}

func (e *Event) GetEventID() string       { return e.EventID }
func (e *Event) GetEventType() string     { return e.EventType }
func (e *Event) GetAggregateID() uint     { return e.AggregateID }
func (e *Event) GetOccurredAt() time.Time { return e.OccurredAt }

// EventHandler processes a domain event. Returning an error asks the caller
// to redeliver, so handlers must be idempotent.
type EventHandler interface {
	Handle(ctx context.Context, event *Event) error
}

// HandlerFunc adapts a function to EventHandler.
type HandlerFunc func(ctx context.Context, event *Event) error

func (f HandlerFunc) Handle(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// Dispatcher delivers an event to every subscribed handler.
type Dispatcher interface {
	Subscribe(eventType string, handler EventHandler) error
	Dispatch(ctx context.Context, event *Event) error
}
