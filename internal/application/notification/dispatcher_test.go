package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/complaintdesk/internal/domain/notification"
	vo "github.com/orris-inc/complaintdesk/internal/domain/notification/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/project"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/domain/team"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

const (
	clientID   = uint(1)
	supportID  = uint(2)
	adminID    = uint(3)
	support2ID = uint(4)
	client2ID  = uint(5)
)

type fixture struct {
	notifications *memoryNotificationRepository
	email         *mockEmailNotifier
	deduper       *MemoryDeduper
	dispatcher    *Dispatcher
}

func newFixture() *fixture {
	users := newMockUserRepository(
		mustUser(clientID, user.RoleClient),
		mustUser(supportID, user.RoleSupport),
		mustUser(adminID, user.RoleAdmin),
		mustUser(support2ID, user.RoleSupport),
		mustUser(client2ID, user.RoleClient),
	)
	teamID := uint(7)
	projects := &mockProjectRepository{projects: map[uint]*project.Project{
		10: project.ReconstructProject(10, "with team", &teamID, time.Now()),
		11: project.ReconstructProject(11, "no team", nil, time.Now()),
	}}
	teams := &mockTeamRepository{members: map[uint][]*team.Member{
		7: {
			team.ReconstructMember(1, 7, support2ID, "lead", time.Now()),
			team.ReconstructMember(2, 7, client2ID, "member", time.Now()),
			team.ReconstructMember(3, 7, adminID, "member", time.Now()),
		},
	}}

	f := &fixture{
		notifications: newMemoryNotificationRepository(),
		email:         &mockEmailNotifier{},
		deduper:       NewMemoryDeduper(time.Hour),
	}
	f.dispatcher = NewDispatcher(f.notifications, users, projects, teams, f.deduper, f.email, logger.NewNop())
	return f
}

func complaintEvent(eventType string, actor uint, projectID uint, assignee *uint) *events.Event {
	return &events.Event{
		EventID:     "evt-" + eventType,
		EventType:   eventType,
		AggregateID: 100,
		ActorID:     actor,
		OccurredAt:  time.Now(),
		Complaint: &events.ComplaintRef{
			ID:         100,
			ProjectID:  projectID,
			ClientID:   clientID,
			AssigneeID: assignee,
			Title:      "Printer on fire",
			FromStatus: "PENDING",
			ToStatus:   "IN_PROGRESS",
		},
	}
}

func uintPtr(v uint) *uint { return &v }

func TestDispatcher_Recipients(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tests := []struct {
		name string
		evt  *events.Event
		want []uint
	}{
		{
			name: "submitted goes to team staff",
			evt:  complaintEvent(events.TypeComplaintSubmitted, clientID, 10, nil),
			want: []uint{support2ID, adminID},
		},
		{
			name: "submitted without team falls back to admins",
			evt:  complaintEvent(events.TypeComplaintSubmitted, clientID, 11, nil),
			want: []uint{adminID},
		},
		{
			name: "status update excludes the actor",
			evt:  complaintEvent(events.TypeStatusUpdated, supportID, 10, uintPtr(supportID)),
			want: []uint{clientID},
		},
		{
			name: "resolved by admin reaches client and assignee",
			evt:  complaintEvent(events.TypeResolved, adminID, 10, uintPtr(supportID)),
			want: []uint{clientID, supportID},
		},
		{
			name: "client withdrawal without assignee has no recipients",
			evt:  complaintEvent(events.TypeStatusUpdated, clientID, 10, nil),
			want: []uint{},
		},
		{
			name: "response excludes the author",
			evt:  complaintEvent(events.TypeNewResponse, clientID, 10, uintPtr(supportID)),
			want: []uint{supportID},
		},
		{
			name: "assigned reaches the new assignee",
			evt:  complaintEvent(events.TypeAssigned, adminID, 10, uintPtr(supportID)),
			want: []uint{supportID},
		},
		{
			name: "self-assignment is still notified",
			evt:  complaintEvent(events.TypeAssigned, supportID, 10, uintPtr(supportID)),
			want: []uint{supportID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.dispatcher.Recipients(ctx, tt.evt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	teamEvt := &events.Event{
		EventID:   "evt-team",
		EventType: events.TypeTeamAdded,
		Team:      &events.TeamRef{TeamID: 7, TeamName: "Ops", UserID: supportID},
	}
	got, err := f.dispatcher.Recipients(ctx, teamEvt)
	require.NoError(t, err)
	assert.Equal(t, []uint{supportID}, got)

	_, err = f.dispatcher.Recipients(ctx, complaintEvent(events.TypeComplaintSubmitted, clientID, 99, nil))
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestDispatcher_Handle_Idempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	evt := complaintEvent(events.TypeResolved, adminID, 10, uintPtr(supportID))

	require.NoError(t, f.dispatcher.Handle(ctx, evt))
	require.NoError(t, f.dispatcher.Handle(ctx, evt))

	assert.Equal(t, []uint{clientID, supportID}, f.notifications.recipients())
	assert.Len(t, f.email.sent, 2)

	// a cold fast path still cannot produce a duplicate row
	f.deduper = NewMemoryDeduper(time.Hour)
	f.dispatcher.deduper = f.deduper
	require.NoError(t, f.dispatcher.Handle(ctx, evt))
	assert.Len(t, f.notifications.recipients(), 2)
	assert.Len(t, f.email.sent, 2)
}

func TestDispatcher_Handle_RecipientIsolation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	evt := complaintEvent(events.TypeResolved, adminID, 10, uintPtr(supportID))

	failing := true
	f.notifications.CreateFunc = func(n *notification.Notification) error {
		if failing && n.UserID() == clientID {
			return errors.New("connection reset")
		}
		return nil
	}

	err := f.dispatcher.Handle(ctx, evt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipient 1")
	assert.Equal(t, []uint{supportID}, f.notifications.recipients())

	// the failed recipient was never marked seen, so the retry reaches it
	seen, _ := f.deduper.Seen(ctx, notification.DedupeKey(evt.EventID, clientID))
	assert.False(t, seen)

	failing = false
	require.NoError(t, f.dispatcher.Handle(ctx, evt))
	assert.Equal(t, []uint{supportID, clientID}, f.notifications.recipients())
}

func TestDispatcher_Handle_EmailFailureIsLogged(t *testing.T) {
	f := newFixture()
	f.email.SendFunc = func(to *user.User) error { return errors.New("smtp timeout") }

	evt := complaintEvent(events.TypeAssigned, adminID, 10, uintPtr(supportID))
	require.NoError(t, f.dispatcher.Handle(context.Background(), evt))
	assert.Equal(t, []uint{supportID}, f.notifications.recipients())
}

func TestDispatcher_Handle_Content(t *testing.T) {
	f := newFixture()
	evt := complaintEvent(events.TypeStatusUpdated, supportID, 10, uintPtr(supportID))
	evt.Message = "looking into it"

	require.NoError(t, f.dispatcher.Handle(context.Background(), evt))
	n, err := f.notifications.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, vo.NotificationTypeStatusUpdated, n.Type())
	assert.Equal(t, "Complaint #100 moved from pending to in progress", n.Message())
	assert.Equal(t, uint(100), n.Metadata()["complaint_id"])
	assert.Equal(t, "evt-STATUS_UPDATED:1", n.DedupeKey())
}

func TestDispatcher_Register(t *testing.T) {
	f := newFixture()
	bus := events.NewInMemoryEventDispatcher(logger.NewNop())
	require.NoError(t, f.dispatcher.Register(bus))

	evt := complaintEvent(events.TypeNewResponse, supportID, 10, uintPtr(supportID))
	require.NoError(t, bus.Dispatch(context.Background(), evt))
	assert.Equal(t, []uint{clientID}, f.notifications.recipients())
}

func TestMemoryDeduper_TTL(t *testing.T) {
	d := NewMemoryDeduper(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }
	ctx := context.Background()

	seen, err := d.Seen(ctx, "k")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, d.MarkSeen(ctx, "k"))
	seen, _ = d.Seen(ctx, "k")
	assert.True(t, seen)

	now = now.Add(2 * time.Minute)
	seen, _ = d.Seen(ctx, "k")
	assert.False(t, seen)

	seen, _ = d.Seen(ctx, "")
	assert.False(t, seen)
}
