package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/application/complaint/dto"
	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	vo "github.com/orris-inc/complaintdesk/internal/domain/complaint/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	permvo "github.com/orris-inc/complaintdesk/internal/domain/permission/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
	"github.com/orris-inc/complaintdesk/internal/shared/utils"
)

type TransitionComplaintCommand struct {
	ComplaintID uint    `json:"complaint_id" validate:"required"`
	NewStatus   string  `json:"status" validate:"required,oneof=PENDING IN_PROGRESS RESOLVED CLOSED WITHDRAWN"`
	ActorID     uint    `json:"actor_id" validate:"required"`
	Message     *string `json:"message" validate:"omitempty,max=2000"`
}

type TransitionComplaintUseCase struct {
	complaints complaint.ComplaintRepository
	history    complaint.HistoryRepository
	users      user.Repository
	enforcer   permission.PermissionEnforcer
	txManager  db.Transactor
	recorder   ActivityRecorder
	outbox     EventOutbox
	logger     logger.Interface
}

func NewTransitionComplaintUseCase(
	complaints complaint.ComplaintRepository,
	history complaint.HistoryRepository,
	users user.Repository,
	enforcer permission.PermissionEnforcer,
	txManager db.Transactor,
	recorder ActivityRecorder,
	outbox EventOutbox,
	logger logger.Interface,
) *TransitionComplaintUseCase {
	return &TransitionComplaintUseCase{
		complaints: complaints,
		history:    history,
		users:      users,
		enforcer:   enforcer,
		txManager:  txManager,
		recorder:   recorder,
		outbox:     outbox,
		logger:     logger,
	}
}

// Execute moves the complaint to NewStatus. The status write, its history
// row, the activity entry and the outbox event commit together; a
// concurrent change of the status makes the whole unit fail with a conflict.
func (uc *TransitionComplaintUseCase) Execute(ctx context.Context, cmd TransitionComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing transition complaint use case",
		"complaint_id", cmd.ComplaintID,
		"new_status", cmd.NewStatus,
		"actor_id", cmd.ActorID,
	)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid transition command", "error", err)
		return nil, err
	}
	target := vo.ComplaintStatus(cmd.NewStatus)

	c, err := loadComplaint(ctx, uc.complaints, cmd.ComplaintID)
	if err != nil {
		return nil, err
	}
	actor, err := loadUser(ctx, uc.users, cmd.ActorID, "user")
	if err != nil {
		return nil, err
	}

	from := c.Status()
	if from.IsTerminal() {
		return nil, errors.NewInvalidTransitionError(fmt.Sprintf("complaint %d is %s and cannot change status", c.ID(), from))
	}
	if !from.CanTransitionTo(target) {
		return nil, errors.NewInvalidTransitionError(fmt.Sprintf("cannot move complaint from %s to %s", from, target))
	}

	if err := authorize(uc.enforcer, actor, c, permvo.TransitionAction(target.String())); err != nil {
		uc.logger.Warnw("transition forbidden",
			"complaint_id", c.ID(),
			"actor_id", actor.ID(),
			"target", target,
		)
		return nil, err
	}

	readVersion := c.Version()
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		now := biztime.NowUTC()
		if err := c.TransitionTo(target, now); err != nil {
			return err
		}
		if err := uc.complaints.CompareAndSwap(txCtx, c, readVersion); err != nil {
			return err
		}

		h, err := complaint.NewHistory(c.ID(), target, cmd.Message, actor.ID(), now)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.history.Append(txCtx, h); err != nil {
			return err
		}

		if err := uc.recorder.Record(txCtx, actor.ID(), activity.ActionComplaintTransitioned, c.ID(), map[string]any{
			"from": from.String(),
			"to":   target.String(),
		}); err != nil {
			return err
		}

		return uc.outbox.Append(txCtx, complaint.NewStatusChangedEvent(c, from, actor.ID(), h.Message()))
	})
	if err != nil {
		uc.logger.Errorw("failed to transition complaint",
			"complaint_id", cmd.ComplaintID,
			"from", from,
			"to", target,
			"error", err,
		)
		return nil, mapError(err, "transition complaint")
	}

	uc.outbox.Notify()

	uc.logger.Infow("complaint transitioned",
		"complaint_id", c.ID(),
		"from", from,
		"to", target,
		"actor_id", actor.ID(),
	)
	return dto.ToComplaintDTO(c), nil
}
