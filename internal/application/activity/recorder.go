// Package activity appends audit rows for mutating actions.
package activity

import (
	"context"
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

// Recorder writes through the repository, which joins the transaction in
// ctx. Callers record only after the mutation itself succeeded, and a
// failed write aborts their unit of work.
type Recorder struct {
	repo   activity.Repository
	logger logger.Interface
}

func NewRecorder(repo activity.Repository, log logger.Interface) *Recorder {
	return &Recorder{repo: repo, logger: log}
}

func (r *Recorder) Record(ctx context.Context, userID uint, action activity.Action, entityID uint, details map[string]any) error {
	entry, err := activity.NewLog(userID, action, entityID, details)
	if err != nil {
		return fmt.Errorf("invalid activity entry: %w", err)
	}

	if err := r.repo.Append(ctx, entry); err != nil {
		r.logger.Errorw("failed to record activity",
			"action", action,
			"entity_id", entityID,
			"user_id", userID,
			"error", err,
		)
		return fmt.Errorf("failed to record activity %s: %w", action, err)
	}

	r.logger.Debugw("activity recorded", "action", action, "entity_id", entityID, "user_id", userID)
	return nil
}
