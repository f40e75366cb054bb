// Package notification turns domain events into per-user notifications.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/notification"
	"github.com/orris-inc/complaintdesk/internal/domain/project"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/domain/team"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
	"github.com/orris-inc/complaintdesk/internal/shared/utils/setutil"
)

// EmailNotifier delivers a markdown body to one user.
type EmailNotifier interface {
	SendNotification(ctx context.Context, to *user.User, subject, markdownBody string) error
}

var routedTypes = []string{
	events.TypeComplaintSubmitted,
	events.TypeStatusUpdated,
	events.TypeResolved,
	events.TypeNewResponse,
	events.TypeAssigned,
	events.TypeTeamAdded,
	events.TypeTeamRemoved,
}

type Dispatcher struct {
	notifications notification.NotificationRepository
	users         user.Repository
	projects      project.Repository
	teams         team.Repository
	deduper       Deduper
	email         EmailNotifier
	logger        logger.Interface
}

// NewDispatcher builds the dispatcher. email may be nil.
func NewDispatcher(
	notifications notification.NotificationRepository,
	users user.Repository,
	projects project.Repository,
	teams team.Repository,
	deduper Deduper,
	email EmailNotifier,
	log logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		users:         users,
		projects:      projects,
		teams:         teams,
		deduper:       deduper,
		email:         email,
		logger:        log,
	}
}

// Register subscribes the dispatcher to every notifying event type.
func (d *Dispatcher) Register(bus events.Dispatcher) error {
	for _, t := range routedTypes {
		if err := bus.Subscribe(t, d); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", t, err)
		}
	}
	return nil
}

// Handle creates one notification per recipient. A recipient failure does
// not stop the others; the joined error makes the relay redeliver, and
// recipients that already succeeded are deduplicated on the retry.
func (d *Dispatcher) Handle(ctx context.Context, evt *events.Event) error {
	c, err := buildContent(evt)
	if err != nil {
		return err
	}

	recipients, err := d.Recipients(ctx, evt)
	if err != nil {
		d.logger.Errorw("failed to resolve notification recipients",
			"event_id", evt.EventID,
			"event_type", evt.EventType,
			"error", err,
		)
		return err
	}
	if len(recipients) == 0 {
		d.logger.Debugw("event has no recipients", "event_id", evt.EventID, "event_type", evt.EventType)
		return nil
	}

	var errs []error
	for _, recipientID := range recipients {
		if err := d.deliver(ctx, evt, c, recipientID); err != nil {
			d.logger.Warnw("failed to notify recipient",
				"event_id", evt.EventID,
				"recipient_id", recipientID,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("recipient %d: %w", recipientID, err))
		}
	}
	return errors.Join(errs...)
}

func (d *Dispatcher) deliver(ctx context.Context, evt *events.Event, c *content, recipientID uint) error {
	key := notification.DedupeKey(evt.EventID, recipientID)

	seen, err := d.deduper.Seen(ctx, key)
	if err != nil {
		d.logger.Warnw("dedupe lookup failed, relying on storage", "key", key, "error", err)
	} else if seen {
		return nil
	}

	n, err := notification.NewNotification(recipientID, c.notificationType, c.message, c.metadata, evt.EventID)
	if err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}

	created, err := d.notifications.CreateIfAbsent(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if err := d.deduper.MarkSeen(ctx, key); err != nil {
		d.logger.Warnw("failed to mark delivery seen", "key", key, "error", err)
	}

	if created {
		d.sendEmail(ctx, recipientID, c)
	}
	return nil
}

func (d *Dispatcher) sendEmail(ctx context.Context, recipientID uint, c *content) {
	if d.email == nil {
		return
	}
	u, err := d.users.GetByID(ctx, recipientID)
	if err != nil {
		d.logger.Warnw("failed to load email recipient", "user_id", recipientID, "error", err)
		return
	}
	if err := d.email.SendNotification(ctx, u, c.message, c.body); err != nil {
		d.logger.Warnw("failed to send notification email", "user_id", recipientID, "error", err)
	}
}

// Recipients resolves who is told about evt, without duplicates.
func (d *Dispatcher) Recipients(ctx context.Context, evt *events.Event) ([]uint, error) {
	set := setutil.NewUintSet()

	switch evt.EventType {
	case events.TypeComplaintSubmitted:
		if evt.Complaint == nil {
			return nil, fmt.Errorf("event %s has no complaint", evt.EventID)
		}
		ids, err := d.projectStaff(ctx, evt.Complaint.ProjectID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			set.Add(id)
		}

	case events.TypeStatusUpdated, events.TypeResolved, events.TypeNewResponse:
		if evt.Complaint == nil {
			return nil, fmt.Errorf("event %s has no complaint", evt.EventID)
		}
		set.Add(evt.Complaint.ClientID)
		set.AddPtr(evt.Complaint.AssigneeID)
		// the actor is the transitioning user or the response author
		set.Remove(evt.ActorID)

	case events.TypeAssigned:
		if evt.Complaint == nil {
			return nil, fmt.Errorf("event %s has no complaint", evt.EventID)
		}
		set.AddPtr(evt.Complaint.AssigneeID)

	case events.TypeTeamAdded, events.TypeTeamRemoved:
		if evt.Team == nil {
			return nil, fmt.Errorf("event %s has no team", evt.EventID)
		}
		set.Add(evt.Team.UserID)

	default:
		return nil, fmt.Errorf("unroutable event type %s", evt.EventType)
	}

	return set.ToSlice(), nil
}

// projectStaff returns the SUPPORT and ADMIN members of the project's team,
// or every ADMIN when the project has no team.
func (d *Dispatcher) projectStaff(ctx context.Context, projectID uint) ([]uint, error) {
	p, err := d.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %d: %w", projectID, err)
	}

	if p.TeamID() == nil {
		admins, err := d.users.ListByRole(ctx, user.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("failed to list admins: %w", err)
		}
		ids := make([]uint, 0, len(admins))
		for _, u := range admins {
			ids = append(ids, u.ID())
		}
		return ids, nil
	}

	members, err := d.teams.ListMembers(ctx, *p.TeamID())
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	memberIDs := make([]uint, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.UserID())
	}
	users, err := d.users.GetByIDs(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}

	staff := make(map[uint]bool, len(users))
	for _, u := range users {
		if u.Role().IsStaff() {
			staff[u.ID()] = true
		}
	}

	ids := make([]uint, 0, len(staff))
	for _, id := range memberIDs {
		if staff[id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
