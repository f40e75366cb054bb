package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	permvo "github.com/orris-inc/complaintdesk/internal/domain/permission/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
)

// ActivityRecorder appends an audit row in the transaction carried by ctx.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uint, action activity.Action, entityID uint, details map[string]any) error
}

// EventOutbox stores events inside the transaction and wakes the relay
// after commit.
type EventOutbox interface {
	Append(ctx context.Context, evts ...*events.Event) error
	Notify()
}

func loadComplaint(ctx context.Context, repo complaint.ComplaintRepository, id uint) (*complaint.Complaint, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, complaint.ErrComplaintNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %d not found", id))
		}
		return nil, errors.NewPersistenceError("failed to load complaint", err.Error())
	}
	return c, nil
}

func loadUser(ctx context.Context, repo user.Repository, id uint, what string) (*user.User, error) {
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("%s %d not found", what, id))
		}
		return nil, errors.NewPersistenceError("failed to load user", err.Error())
	}
	return u, nil
}

func isAllowed(e permission.PermissionEnforcer, actor *user.User, c *complaint.Complaint, action permvo.Action) (bool, error) {
	subjects := permission.Subjects(actor.Role().String(), c.RelationsOf(actor.ID())...)
	ok, err := permission.Authorize(e, subjects, permvo.ResourceComplaint, action)
	if err != nil {
		return false, errors.NewPersistenceError("authorization check failed", err.Error())
	}
	return ok, nil
}

func authorize(e permission.PermissionEnforcer, actor *user.User, c *complaint.Complaint, action permvo.Action) error {
	ok, err := isAllowed(e, actor, c, action)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewForbiddenError(fmt.Sprintf("user %d may not %s complaint %d", actor.ID(), action, c.ID()))
	}
	return nil
}

// mapError converts domain and storage failures to AppErrors.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, complaint.ErrStatusConflict):
		return errors.NewConflictError("complaint was modified concurrently, reload and retry")
	case stderrors.Is(err, complaint.ErrInvalidTransition):
		return errors.NewInvalidTransitionError(err.Error())
	case stderrors.Is(err, complaint.ErrTerminalState):
		return errors.NewTerminalStateError(err.Error())
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.NewPersistenceError(op+" aborted", err.Error())
	default:
		return errors.NewPersistenceError("failed to "+op, err.Error())
	}
}
