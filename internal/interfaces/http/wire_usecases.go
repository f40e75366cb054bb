package http

import (
	complaintUsecases "github.com/orris-inc/complaintdesk/internal/application/complaint/usecases"
	notificationUsecases "github.com/orris-inc/complaintdesk/internal/application/notification/usecases"
	teamUsecases "github.com/orris-inc/complaintdesk/internal/application/team/usecases"
)

type allUseCases struct {
	submitComplaint     *complaintUsecases.SubmitComplaintUseCase
	getComplaint        *complaintUsecases.GetComplaintUseCase
	transitionComplaint *complaintUsecases.TransitionComplaintUseCase
	assignComplaint     *complaintUsecases.AssignComplaintUseCase
	listHistory         *complaintUsecases.ListHistoryUseCase
	addResponse         *complaintUsecases.AddResponseUseCase
	listNotifications   *notificationUsecases.ListNotificationsUseCase
	markRead            *notificationUsecases.MarkReadUseCase
	addMember           *teamUsecases.AddMemberUseCase
	removeMember        *teamUsecases.RemoveMemberUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log

	c.ucs = &allUseCases{
		submitComplaint: complaintUsecases.NewSubmitComplaintUseCase(
			r.complaintRepo, r.historyRepo, r.attachmentRepo, r.userRepo, r.projectRepo,
			c.txManager, c.recorder, c.outboxWriter, log,
		),
		getComplaint: complaintUsecases.NewGetComplaintUseCase(
			r.complaintRepo, r.responseRepo, r.attachmentRepo, r.userRepo, c.enforcer, log,
		),
		transitionComplaint: complaintUsecases.NewTransitionComplaintUseCase(
			r.complaintRepo, r.historyRepo, r.userRepo, c.enforcer,
			c.txManager, c.recorder, c.outboxWriter, log,
		),
		assignComplaint: complaintUsecases.NewAssignComplaintUseCase(
			r.complaintRepo, r.userRepo, c.enforcer,
			c.txManager, c.recorder, c.outboxWriter, log,
		),
		listHistory: complaintUsecases.NewListHistoryUseCase(
			r.complaintRepo, r.historyRepo, r.userRepo, c.enforcer, log,
		),
		addResponse: complaintUsecases.NewAddResponseUseCase(
			r.complaintRepo, r.responseRepo, r.attachmentRepo, r.userRepo, c.enforcer, c.markdown,
			c.txManager, c.recorder, c.outboxWriter, log,
		),
		listNotifications: notificationUsecases.NewListNotificationsUseCase(r.notificationRepo, log),
		markRead:          notificationUsecases.NewMarkReadUseCase(r.notificationRepo, log),
		addMember: teamUsecases.NewAddMemberUseCase(
			r.teamRepo, r.userRepo, c.enforcer,
			c.txManager, c.recorder, c.outboxWriter, log,
		),
		removeMember: teamUsecases.NewRemoveMemberUseCase(
			r.teamRepo, r.userRepo, c.enforcer,
			c.txManager, c.recorder, c.outboxWriter, log,
		),
	}
}
