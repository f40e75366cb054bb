package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/application/complaint/dto"
	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	permvo "github.com/orris-inc/complaintdesk/internal/domain/permission/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
	"github.com/orris-inc/complaintdesk/internal/shared/utils"
)

type AssignComplaintCommand struct {
	ComplaintID uint `json:"complaint_id" validate:"required"`
	// AssigneeID nil clears the assignment.
	AssigneeID *uint `json:"assignee_id" validate:"omitempty,gt=0"`
	ActorID    uint  `json:"actor_id" validate:"required"`
}

type AssignComplaintUseCase struct {
	complaints complaint.ComplaintRepository
	users      user.Repository
	enforcer   permission.PermissionEnforcer
	txManager  db.Transactor
	recorder   ActivityRecorder
	outbox     EventOutbox
	logger     logger.Interface
}

func NewAssignComplaintUseCase(
	complaints complaint.ComplaintRepository,
	users user.Repository,
	enforcer permission.PermissionEnforcer,
	txManager db.Transactor,
	recorder ActivityRecorder,
	outbox EventOutbox,
	logger logger.Interface,
) *AssignComplaintUseCase {
	return &AssignComplaintUseCase{
		complaints: complaints,
		users:      users,
		enforcer:   enforcer,
		txManager:  txManager,
		recorder:   recorder,
		outbox:     outbox,
		logger:     logger,
	}
}

func (uc *AssignComplaintUseCase) Execute(ctx context.Context, cmd AssignComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing assign complaint use case",
		"complaint_id", cmd.ComplaintID,
		"assignee_id", cmd.AssigneeID,
		"actor_id", cmd.ActorID,
	)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid assign command", "error", err)
		return nil, err
	}

	c, err := loadComplaint(ctx, uc.complaints, cmd.ComplaintID)
	if err != nil {
		return nil, err
	}
	actor, err := loadUser(ctx, uc.users, cmd.ActorID, "user")
	if err != nil {
		return nil, err
	}
	var assignee *user.User
	if cmd.AssigneeID != nil {
		if assignee, err = loadUser(ctx, uc.users, *cmd.AssigneeID, "assignee"); err != nil {
			return nil, err
		}
	}

	if err := authorize(uc.enforcer, actor, c, permvo.ActionAssign); err != nil {
		uc.logger.Warnw("assignment forbidden", "complaint_id", c.ID(), "actor_id", actor.ID())
		return nil, err
	}
	if err := c.EnsureOpen(); err != nil {
		return nil, mapError(err, "assign complaint")
	}
	if assignee != nil && !assignee.Role().IsStaff() {
		return nil, errors.NewInvalidRoleError(fmt.Sprintf("user %d has role %s and cannot be assigned", assignee.ID(), assignee.Role()))
	}

	readVersion := c.Version()
	previous := c.AssigneeID()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := c.AssignTo(cmd.AssigneeID, biztime.NowUTC()); err != nil {
			return err
		}
		if err := uc.complaints.CompareAndSwap(txCtx, c, readVersion); err != nil {
			return err
		}

		details := map[string]any{}
		if previous != nil {
			details["previous_assignee_id"] = *previous
		}
		if assignee == nil {
			return uc.recorder.Record(txCtx, actor.ID(), activity.ActionComplaintUnassigned, c.ID(), details)
		}

		details["assignee_id"] = assignee.ID()
		if err := uc.recorder.Record(txCtx, actor.ID(), activity.ActionComplaintAssigned, c.ID(), details); err != nil {
			return err
		}
		return uc.outbox.Append(txCtx, complaint.NewAssignedEvent(c, actor.ID()))
	})
	if err != nil {
		uc.logger.Errorw("failed to assign complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, mapError(err, "assign complaint")
	}

	if assignee != nil {
		uc.outbox.Notify()
	}

	uc.logger.Infow("complaint assignment changed",
		"complaint_id", c.ID(),
		"assignee_id", cmd.AssigneeID,
		"actor_id", actor.ID(),
	)
	return dto.ToComplaintDTO(c), nil
}
