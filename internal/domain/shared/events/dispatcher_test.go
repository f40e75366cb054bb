package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

func TestInMemoryEventDispatcher_Dispatch(t *testing.T) {
	d := NewInMemoryEventDispatcher(logger.NewNop())
	ctx := context.Background()

	var calls []string
	require.NoError(t, d.Subscribe(TypeAssigned, HandlerFunc(func(ctx context.Context, e *Event) error {
		calls = append(calls, "assigned")
		return nil
	})))
	require.NoError(t, d.Subscribe(WildcardType, HandlerFunc(func(ctx context.Context, e *Event) error {
		calls = append(calls, "wildcard:"+e.EventType)
		return nil
	})))

	require.NoError(t, d.Dispatch(ctx, &Event{EventID: "e1", EventType: TypeAssigned}))
	require.NoError(t, d.Dispatch(ctx, &Event{EventID: "e2", EventType: TypeResolved}))

	assert.Equal(t, []string{"assigned", "wildcard:ASSIGNED", "wildcard:RESOLVED"}, calls)
}

func TestInMemoryEventDispatcher_IsolatesFailures(t *testing.T) {
	d := NewInMemoryEventDispatcher(logger.NewNop())
	boom := errors.New("smtp down")
	reached := false

	require.NoError(t, d.Subscribe(TypeResolved, HandlerFunc(func(ctx context.Context, e *Event) error {
		return boom
	})))
	require.NoError(t, d.Subscribe(TypeResolved, HandlerFunc(func(ctx context.Context, e *Event) error {
		panic("nil map")
	})))
	require.NoError(t, d.Subscribe(TypeResolved, HandlerFunc(func(ctx context.Context, e *Event) error {
		reached = true
		return nil
	})))

	err := d.Dispatch(context.Background(), &Event{EventID: "e1", EventType: TypeResolved})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "panicked")
	assert.True(t, reached)
}

func TestInMemoryEventDispatcher_SubscribeValidation(t *testing.T) {
	d := NewInMemoryEventDispatcher(logger.NewNop())

	assert.Error(t, d.Subscribe("", HandlerFunc(func(context.Context, *Event) error { return nil })))
	assert.Error(t, d.Subscribe(TypeAssigned, nil))
	assert.Error(t, d.Dispatch(context.Background(), nil))
}
