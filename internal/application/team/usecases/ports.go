package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	permvo "github.com/orris-inc/complaintdesk/internal/domain/permission/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/domain/team"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
)

type ActivityRecorder interface {
	Record(ctx context.Context, userID uint, action activity.Action, entityID uint, details map[string]any) error
}

type EventOutbox interface {
	Append(ctx context.Context, evts ...*events.Event) error
	Notify()
}

// membershipContext holds what both membership operations load before writing.
type membershipContext struct {
	team   *team.Team
	actor  *user.User
	member *user.User
}

func loadMembershipContext(
	ctx context.Context,
	teams team.Repository,
	users user.Repository,
	enforcer permission.PermissionEnforcer,
	teamID, userID, actorID uint,
) (*membershipContext, error) {
	t, err := teams.GetByID(ctx, teamID)
	if err != nil {
		if stderrors.Is(err, team.ErrTeamNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("team %d not found", teamID))
		}
		return nil, errors.NewPersistenceError("failed to load team", err.Error())
	}

	actor, err := loadUser(ctx, users, actorID)
	if err != nil {
		return nil, err
	}

	subjects := permission.Subjects(actor.Role().String())
	ok, err := permission.Authorize(enforcer, subjects, permvo.ResourceTeam, permvo.ActionManageMembers)
	if err != nil {
		return nil, errors.NewPersistenceError("authorization check failed", err.Error())
	}
	if !ok {
		return nil, errors.NewForbiddenError(fmt.Sprintf("user %d may not manage members of team %d", actor.ID(), t.ID()))
	}

	member, err := loadUser(ctx, users, userID)
	if err != nil {
		return nil, err
	}

	return &membershipContext{team: t, actor: actor, member: member}, nil
}

func loadUser(ctx context.Context, repo user.Repository, id uint) (*user.User, error) {
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", id))
		}
		return nil, errors.NewPersistenceError("failed to load user", err.Error())
	}
	return u, nil
}
