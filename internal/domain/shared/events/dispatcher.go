package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/orris-inc/complaintdesk/internal/shared/goroutine"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

// WildcardType subscribes a handler to every event type.
const WildcardType = "*"

// InMemoryEventDispatcher fans an event out to its handlers synchronously.
// Delivery durability comes from the outbox relay that calls Dispatch, so
// the dispatcher itself keeps no queue.
type InMemoryEventDispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewInMemoryEventDispatcher(log logger.Interface) *InMemoryEventDispatcher {
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		logger:   log,
	}
}

// Subscribe registers a handler for specific event types
func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// Dispatch runs every handler for the event type, then the wildcard handlers.
// A failing or panicking handler does not stop the others; all failures are
// joined into the returned error.
func (d *InMemoryEventDispatcher) Dispatch(ctx context.Context, event *Event) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}

	d.mu.RLock()
	handlers := make([]EventHandler, 0, len(d.handlers[event.EventType])+len(d.handlers[WildcardType]))
	handlers = append(handlers, d.handlers[event.EventType]...)
	handlers = append(handlers, d.handlers[WildcardType]...)
	d.mu.RUnlock()

	var errs []error
	for i, h := range handlers {
		var herr error
		ok := goroutine.Run(d.logger, "event-handler:"+event.EventType, func() {
			herr = h.Handle(ctx, event)
		})
		if !ok {
			herr = fmt.Errorf("handler %d panicked", i)
		}
		if herr != nil {
			d.logger.Warnw("event handler failed",
				"event_id", event.EventID,
				"event_type", event.EventType,
				"error", herr,
			)
			errs = append(errs, herr)
		}
	}

	return errors.Join(errs...)
}
