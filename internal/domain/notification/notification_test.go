package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/orris-inc/complaintdesk/internal/domain/notification/valueobjects"
)

func TestNewNotification(t *testing.T) {
	n, err := NewNotification(7, vo.NotificationTypeAssigned, "You were assigned", map[string]any{"complaint_id": 1}, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "evt-1:7", n.DedupeKey())
	assert.False(t, n.IsRead())
	assert.True(t, n.BelongsTo(7))

	assert.True(t, n.MarkRead())
	assert.False(t, n.MarkRead())
	assert.True(t, n.IsRead())

	_, err = NewNotification(0, vo.NotificationTypeAssigned, "m", nil, "evt")
	assert.Error(t, err)
	_, err = NewNotification(1, vo.NotificationType("PING"), "m", nil, "evt")
	assert.Error(t, err)
	_, err = NewNotification(1, vo.NotificationTypeAssigned, "m", nil, "")
	assert.Error(t, err)
}
