package usecases

import (
	"context"

	"github.com/orris-inc/complaintdesk/internal/domain/notification"
)

type mockNotificationRepository struct {
	GetByIDFunc  func(ctx context.Context, id uint) (*notification.Notification, error)
	ListFunc     func(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error)
	MarkReadFunc func(ctx context.Context, id uint) error
	markedRead   []uint
}

func (m *mockNotificationRepository) CreateIfAbsent(ctx context.Context, n *notification.Notification) (bool, error) {
	return true, nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, notification.ErrNotificationNotFound
}

func (m *mockNotificationRepository) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	m.markedRead = append(m.markedRead, id)
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	return nil
}
