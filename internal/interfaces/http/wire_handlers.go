package http

import (
	"github.com/orris-inc/complaintdesk/internal/interfaces/http/handlers"
)

type allHandlers struct {
	complaintHandler    *handlers.ComplaintHandler
	notificationHandler *handlers.NotificationHandler
	teamHandler         *handlers.TeamHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	c.hdlrs = &allHandlers{
		complaintHandler: handlers.NewComplaintHandler(
			u.submitComplaint,
			u.getComplaint,
			u.transitionComplaint,
			u.assignComplaint,
			u.listHistory,
			u.addResponse,
			c.log,
		),
		notificationHandler: handlers.NewNotificationHandler(u.listNotifications, u.markRead, c.log),
		teamHandler:         handlers.NewTeamHandler(u.addMember, u.removeMember, c.log),
	}
}
