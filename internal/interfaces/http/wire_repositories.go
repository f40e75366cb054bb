package http

import (
	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	"github.com/orris-inc/complaintdesk/internal/domain/notification"
	"github.com/orris-inc/complaintdesk/internal/domain/outbox"
	"github.com/orris-inc/complaintdesk/internal/domain/project"
	"github.com/orris-inc/complaintdesk/internal/domain/response"
	"github.com/orris-inc/complaintdesk/internal/domain/team"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	projectRepo      project.Repository
	teamRepo         team.Repository
	complaintRepo    complaint.ComplaintRepository
	historyRepo      complaint.HistoryRepository
	responseRepo     response.Repository
	attachmentRepo   response.AttachmentRepository
	notificationRepo notification.NotificationRepository
	activityRepo     activity.Repository
	outboxRepo       outbox.Repository
}

func (c *Container) initRepositories() {
	db := c.db
	c.repos = &repositories{
		userRepo:         repository.NewUserRepository(db),
		projectRepo:      repository.NewProjectRepository(db),
		teamRepo:         repository.NewTeamRepository(db),
		complaintRepo:    repository.NewComplaintRepository(db, c.log),
		historyRepo:      repository.NewComplaintHistoryRepository(db),
		responseRepo:     repository.NewResponseRepository(db),
		attachmentRepo:   repository.NewAttachmentRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
		activityRepo:     repository.NewActivityRepository(db),
		outboxRepo:       repository.NewOutboxRepository(db),
	}
}
