package notification

import (
	"context"
	"errors"
)

var ErrNotificationNotFound = errors.New("notification not found")

type ListFilter struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
}

type NotificationRepository interface {
	// CreateIfAbsent inserts n unless its dedupe key is already stored.
	// It reports whether a row was written.
	CreateIfAbsent(ctx context.Context, n *Notification) (bool, error)
	GetByID(ctx context.Context, id uint) (*Notification, error)
	List(ctx context.Context, filter ListFilter) ([]*Notification, int64, error)
	MarkRead(ctx context.Context, id uint) error
}
