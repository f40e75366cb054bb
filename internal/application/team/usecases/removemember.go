package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	"github.com/orris-inc/complaintdesk/internal/domain/team"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

type RemoveMemberCommand struct {
	TeamID  uint
	UserID  uint
	ActorID uint
}

type RemoveMemberUseCase struct {
	teams     team.Repository
	users     user.Repository
	enforcer  permission.PermissionEnforcer
	txManager db.Transactor
	recorder  ActivityRecorder
	outbox    EventOutbox
	logger    logger.Interface
}

func NewRemoveMemberUseCase(
	teams team.Repository,
	users user.Repository,
	enforcer permission.PermissionEnforcer,
	txManager db.Transactor,
	recorder ActivityRecorder,
	outbox EventOutbox,
	logger logger.Interface,
) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		teams:     teams,
		users:     users,
		enforcer:  enforcer,
		txManager: txManager,
		recorder:  recorder,
		outbox:    outbox,
		logger:    logger,
	}
}

func (uc *RemoveMemberUseCase) Execute(ctx context.Context, cmd RemoveMemberCommand) error {
	uc.logger.Infow("executing remove team member use case",
		"team_id", cmd.TeamID,
		"user_id", cmd.UserID,
		"actor_id", cmd.ActorID,
	)

	if cmd.TeamID == 0 || cmd.UserID == 0 || cmd.ActorID == 0 {
		return errors.NewValidationError("team ID, user ID and actor ID are required")
	}

	mc, err := loadMembershipContext(ctx, uc.teams, uc.users, uc.enforcer, cmd.TeamID, cmd.UserID, cmd.ActorID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		m, err := uc.teams.GetMember(txCtx, mc.team.ID(), mc.member.ID())
		if err != nil {
			return err
		}
		if err := uc.teams.RemoveMember(txCtx, mc.team.ID(), mc.member.ID()); err != nil {
			return err
		}
		if err := uc.recorder.Record(txCtx, mc.actor.ID(), activity.ActionTeamMemberRemoved, mc.team.ID(), map[string]any{
			"user_id": m.UserID(),
			"role":    m.Role(),
		}); err != nil {
			return err
		}
		return uc.outbox.Append(txCtx, team.NewMemberRemovedEvent(mc.team, m, mc.actor.ID()))
	})
	if err != nil {
		if stderrors.Is(err, team.ErrMemberNotFound) {
			return errors.NewNotFoundError(fmt.Sprintf("user %d is not a member of team %d", cmd.UserID, cmd.TeamID))
		}
		uc.logger.Errorw("failed to remove team member", "team_id", cmd.TeamID, "user_id", cmd.UserID, "error", err)
		return errors.NewPersistenceError("failed to remove team member", err.Error())
	}

	uc.outbox.Notify()

	uc.logger.Infow("team member removed", "team_id", cmd.TeamID, "user_id", cmd.UserID)
	return nil
}
