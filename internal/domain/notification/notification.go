package notification

import (
	"fmt"
	"time"

	vo "github.com/orris-inc/complaintdesk/internal/domain/notification/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
)

// Notification is created once per (event, recipient) and afterwards only
// its read flag changes.
type Notification struct {
	id               uint
	userID           uint
	message          string
	notificationType vo.NotificationType
	isRead           bool
	metadata         map[string]any
	dedupeKey        string
	createdAt        time.Time
}

// DedupeKey identifies a delivery of eventID to recipientID.
func DedupeKey(eventID string, recipientID uint) string {
	return fmt.Sprintf("%s:%d", eventID, recipientID)
}

func NewNotification(
	userID uint,
	notificationType vo.NotificationType,
	message string,
	metadata map[string]any,
	eventID string,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 1000 {
		return nil, fmt.Errorf("message exceeds maximum length of 1000 characters")
	}
	if eventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}

	return &Notification{
		userID:           userID,
		message:          message,
		notificationType: notificationType,
		metadata:         metadata,
		dedupeKey:        DedupeKey(eventID, userID),
		createdAt:        biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	message string,
	notificationType vo.NotificationType,
	isRead bool,
	metadata map[string]any,
	dedupeKey string,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}

	return &Notification{
		id:               id,
		userID:           userID,
		message:          message,
		notificationType: notificationType,
		isRead:           isRead,
		metadata:         metadata,
		dedupeKey:        dedupeKey,
		createdAt:        createdAt,
	}, nil
}

func (n *Notification) ID() uint                   { return n.id }
func (n *Notification) UserID() uint               { return n.userID }
func (n *Notification) Message() string            { return n.message }
func (n *Notification) Type() vo.NotificationType  { return n.notificationType }
func (n *Notification) IsRead() bool               { return n.isRead }
func (n *Notification) Metadata() map[string]any   { return n.metadata }
func (n *Notification) DedupeKey() string          { return n.dedupeKey }
func (n *Notification) CreatedAt() time.Time       { return n.createdAt }
func (n *Notification) BelongsTo(userID uint) bool { return n.userID == userID }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	n.id = id
	return nil
}

// MarkRead reports whether the flag changed.
func (n *Notification) MarkRead() bool {
	if n.isRead {
		return false
	}
	n.isRead = true
	return true
}
