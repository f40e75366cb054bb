package usecases

import (
	"context"
	stderrors "errors"

	"github.com/orris-inc/complaintdesk/internal/application/team/dto"
	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	"github.com/orris-inc/complaintdesk/internal/domain/team"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
	"github.com/orris-inc/complaintdesk/internal/shared/utils"
)

type AddMemberCommand struct {
	TeamID  uint   `json:"team_id" validate:"required"`
	UserID  uint   `json:"user_id" validate:"required"`
	Role    string `json:"role" validate:"omitempty,max=50"`
	ActorID uint   `json:"actor_id" validate:"required"`
}

type AddMemberUseCase struct {
	teams     team.Repository
	users     user.Repository
	enforcer  permission.PermissionEnforcer
	txManager db.Transactor
	recorder  ActivityRecorder
	outbox    EventOutbox
	logger    logger.Interface
}

func NewAddMemberUseCase(
	teams team.Repository,
	users user.Repository,
	enforcer permission.PermissionEnforcer,
	txManager db.Transactor,
	recorder ActivityRecorder,
	outbox EventOutbox,
	logger logger.Interface,
) *AddMemberUseCase {
	return &AddMemberUseCase{
		teams:     teams,
		users:     users,
		enforcer:  enforcer,
		txManager: txManager,
		recorder:  recorder,
		outbox:    outbox,
		logger:    logger,
	}
}

func (uc *AddMemberUseCase) Execute(ctx context.Context, cmd AddMemberCommand) (*dto.MemberDTO, error) {
	uc.logger.Infow("executing add team member use case",
		"team_id", cmd.TeamID,
		"user_id", cmd.UserID,
		"actor_id", cmd.ActorID,
	)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid add member command", "error", err)
		return nil, err
	}

	mc, err := loadMembershipContext(ctx, uc.teams, uc.users, uc.enforcer, cmd.TeamID, cmd.UserID, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	m, err := team.NewMember(mc.team.ID(), mc.member.ID(), cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.teams.AddMember(txCtx, m); err != nil {
			return err
		}
		if err := uc.recorder.Record(txCtx, mc.actor.ID(), activity.ActionTeamMemberAdded, mc.team.ID(), map[string]any{
			"user_id": m.UserID(),
			"role":    m.Role(),
		}); err != nil {
			return err
		}
		return uc.outbox.Append(txCtx, team.NewMemberAddedEvent(mc.team, m, mc.actor.ID()))
	})
	if err != nil {
		if stderrors.Is(err, team.ErrDuplicateMember) {
			return nil, errors.NewConflictError("user is already a member of the team")
		}
		uc.logger.Errorw("failed to add team member", "team_id", cmd.TeamID, "user_id", cmd.UserID, "error", err)
		return nil, errors.NewPersistenceError("failed to add team member", err.Error())
	}

	uc.outbox.Notify()

	uc.logger.Infow("team member added", "team_id", mc.team.ID(), "user_id", m.UserID(), "member_id", m.ID())
	return dto.ToMemberDTO(m), nil
}
