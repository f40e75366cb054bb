// Package outbox persists domain events next to the change that raised them
// and relays them to subscribers after commit.
package outbox

import (
	"context"
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/outbox"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

// Nudger wakes a relay so it does not wait for the next poll.
type Nudger interface {
	Nudge()
}

type Writer struct {
	repo   outbox.Repository
	nudger Nudger
	logger logger.Interface
}

func NewWriter(repo outbox.Repository, log logger.Interface) *Writer {
	return &Writer{repo: repo, logger: log}
}

// SetNudger connects a relay running in the same process. Without one,
// events wait for the relay's next poll.
func (w *Writer) SetNudger(n Nudger) {
	w.nudger = n
}

// Append stores evts in the transaction carried by ctx.
func (w *Writer) Append(ctx context.Context, evts ...*events.Event) error {
	for _, evt := range evts {
		row, err := outbox.NewEvent(evt)
		if err != nil {
			return err
		}
		if err := w.repo.Append(ctx, row); err != nil {
			return fmt.Errorf("failed to append outbox event %s: %w", evt.EventID, err)
		}
		w.logger.Debugw("outbox event appended", "event_id", evt.EventID, "event_type", evt.EventType)
	}
	return nil
}

// Notify is called after commit.
func (w *Writer) Notify() {
	if w.nudger != nil {
		w.nudger.Nudge()
	}
}
