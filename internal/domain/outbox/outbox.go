// Package outbox models committed domain events waiting to be delivered.
package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPublished Status = "PUBLISHED"
	StatusFailed    Status = "FAILED"
	// StatusDead rows exhausted their attempts and are no longer polled.
	StatusDead Status = "DEAD"
)

func (s Status) String() string {
	return string(s)
}

type Event struct {
	id            uint
	eventID       string
	eventType     string
	aggregateID   uint
	payload       []byte
	status        Status
	attempts      int
	lastError     string
	createdAt     time.Time
	publishedAt   *time.Time
	nextAttemptAt *time.Time
}

// NewEvent serializes a domain event into a PENDING outbox row.
func NewEvent(evt *events.Event) (*Event, error) {
	if evt == nil {
		return nil, fmt.Errorf("event cannot be nil")
	}
	if evt.EventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event %s: %w", evt.EventID, err)
	}
	return &Event{
		eventID:     evt.EventID,
		eventType:   evt.EventType,
		aggregateID: evt.AggregateID,
		payload:     payload,
		status:      StatusPending,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructEvent(
	id uint,
	eventID, eventType string,
	aggregateID uint,
	payload []byte,
	status Status,
	attempts int,
	lastError string,
	createdAt time.Time,
	publishedAt, nextAttemptAt *time.Time,
) *Event {
	return &Event{
		id:            id,
		eventID:       eventID,
		eventType:     eventType,
		aggregateID:   aggregateID,
		payload:       payload,
		status:        status,
		attempts:      attempts,
		lastError:     lastError,
		createdAt:     createdAt,
		publishedAt:   publishedAt,
		nextAttemptAt: nextAttemptAt,
	}
}

func (e *Event) ID() uint                { return e.id }
func (e *Event) EventID() string         { return e.eventID }
func (e *Event) EventType() string       { return e.eventType }
func (e *Event) AggregateID() uint       { return e.aggregateID }
func (e *Event) Payload() []byte         { return e.payload }
func (e *Event) Status() Status          { return e.status }
func (e *Event) Attempts() int           { return e.attempts }
func (e *Event) LastError() string       { return e.lastError }
func (e *Event) CreatedAt() time.Time    { return e.createdAt }
func (e *Event) PublishedAt() *time.Time { return e.publishedAt }

// NextAttemptAt is set on FAILED rows; they are not claimed before it.
func (e *Event) NextAttemptAt() *time.Time { return e.nextAttemptAt }

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("outbox event ID is already set")
	}
	e.id = id
	return nil
}

// Decode returns the domain event stored in the payload.
func (e *Event) Decode() (*events.Event, error) {
	var evt events.Event
	if err := json.Unmarshal(e.payload, &evt); err != nil {
		return nil, fmt.Errorf("failed to decode outbox event %s: %w", e.eventID, err)
	}
	return &evt, nil
}

// StreamKey groups events whose relative order must be kept.
func (e *Event) StreamKey() string {
	return fmt.Sprintf("%s:%d", aggregateKind(e.eventType), e.aggregateID)
}

func aggregateKind(eventType string) string {
	switch eventType {
	case events.TypeTeamAdded, events.TypeTeamRemoved:
		return "team"
	default:
		return "complaint"
	}
}
