package repository

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	vo "github.com/orris-inc/complaintdesk/internal/domain/complaint/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

func TestComplaintRepository_CreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	client := seedUser(t, gdb, "client", user.RoleClient)
	p := seedProject(t, gdb, nil)
	repo := NewComplaintRepository(gdb, logger.NewNop())

	c := seedComplaint(t, gdb, client.ID(), p.ID())
	require.NotZero(t, c.ID())

	got, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, c.Title(), got.Title())
	assert.Equal(t, vo.StatusPending, got.Status())
	assert.Equal(t, 1, got.Version())
	assert.Nil(t, got.AssigneeID())
	assert.True(t, c.CreatedAt().Equal(got.CreatedAt()))

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, complaint.ErrComplaintNotFound)
}

func TestComplaintRepository_CompareAndSwap(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	client := seedUser(t, gdb, "client", user.RoleClient)
	staff := seedUser(t, gdb, "staff", user.RoleSupport)
	p := seedProject(t, gdb, nil)
	repo := NewComplaintRepository(gdb, logger.NewNop())
	c := seedComplaint(t, gdb, client.ID(), p.ID())

	first, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)

	require.NoError(t, first.TransitionTo(vo.StatusInProgress, ts(5)))
	staffID := staff.ID()
	require.NoError(t, first.AssignTo(&staffID, ts(5)))
	require.NoError(t, repo.CompareAndSwap(ctx, first, 1))

	require.NoError(t, second.TransitionTo(vo.StatusWithdrawn, ts(6)))
	err = repo.CompareAndSwap(ctx, second, 1)
	assert.ErrorIs(t, err, complaint.ErrStatusConflict)

	stored, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, stored.Status())
	assert.Equal(t, 3, stored.Version())
	require.NotNil(t, stored.AssigneeID())
	assert.Equal(t, staffID, *stored.AssigneeID())
	assert.Nil(t, stored.ClosedAt())

	// Clearing the assignee writes NULL.
	require.NoError(t, stored.AssignTo(nil, ts(7)))
	require.NoError(t, repo.CompareAndSwap(ctx, stored, 3))
	cleared, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Nil(t, cleared.AssigneeID())
}

// Writers that keep the status unchanged still invalidate older snapshots.
func TestComplaintRepository_CompareAndSwapGuardsVersion(t *testing.T) {
	tests := []struct {
		name   string
		stale  func(c *complaint.Complaint, otherID uint) error
		winner func(c *complaint.Complaint, staffID uint) error
	}{
		{
			name: "transition after assignment",
			winner: func(c *complaint.Complaint, staffID uint) error {
				return c.AssignTo(&staffID, ts(1))
			},
			stale: func(c *complaint.Complaint, otherID uint) error {
				return c.TransitionTo(vo.StatusInProgress, ts(2))
			},
		},
		{
			name: "assignment after assignment",
			winner: func(c *complaint.Complaint, staffID uint) error {
				return c.AssignTo(&staffID, ts(1))
			},
			stale: func(c *complaint.Complaint, otherID uint) error {
				return c.AssignTo(&otherID, ts(2))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdb := setupTestDB(t)
			ctx := context.Background()
			client := seedUser(t, gdb, "client", user.RoleClient)
			staff := seedUser(t, gdb, "staff", user.RoleSupport)
			other := seedUser(t, gdb, "other", user.RoleSupport)
			p := seedProject(t, gdb, nil)
			repo := NewComplaintRepository(gdb, logger.NewNop())
			c := seedComplaint(t, gdb, client.ID(), p.ID())

			first, err := repo.GetByID(ctx, c.ID())
			require.NoError(t, err)
			second, err := repo.GetByID(ctx, c.ID())
			require.NoError(t, err)

			require.NoError(t, tt.winner(first, staff.ID()))
			require.NoError(t, repo.CompareAndSwap(ctx, first, 1))

			require.NoError(t, tt.stale(second, other.ID()))
			err = repo.CompareAndSwap(ctx, second, 1)
			assert.ErrorIs(t, err, complaint.ErrStatusConflict)

			stored, err := repo.GetByID(ctx, c.ID())
			require.NoError(t, err)
			assert.Equal(t, vo.StatusPending, stored.Status())
			assert.Equal(t, 2, stored.Version())
			require.NotNil(t, stored.AssigneeID())
			assert.Equal(t, staff.ID(), *stored.AssigneeID())
		})
	}
}

func TestComplaintRepository_ConflictRollsBackUnitOfWork(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	client := seedUser(t, gdb, "client", user.RoleClient)
	p := seedProject(t, gdb, nil)
	repo := NewComplaintRepository(gdb, logger.NewNop())
	history := NewComplaintHistoryRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	c := seedComplaint(t, gdb, client.ID(), p.ID())

	stale, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	fresh, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	require.NoError(t, fresh.TransitionTo(vo.StatusInProgress, ts(1)))
	require.NoError(t, repo.CompareAndSwap(ctx, fresh, 1))

	err = tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		h, err := complaint.NewHistory(c.ID(), vo.StatusWithdrawn, nil, client.ID(), ts(2))
		require.NoError(t, err)
		if err := history.Append(txCtx, h); err != nil {
			return err
		}
		if err := stale.TransitionTo(vo.StatusWithdrawn, ts(2)); err != nil {
			return err
		}
		return repo.CompareAndSwap(txCtx, stale, 1)
	})
	assert.True(t, stderrors.Is(err, complaint.ErrStatusConflict))

	rows, err := history.ListByComplaint(ctx, c.ID())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestComplaintHistoryRepository_Chronological(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	repo := NewComplaintHistoryRepository(gdb)

	msg := "started"
	entries := []struct {
		status vo.ComplaintStatus
		at     int
	}{
		{vo.StatusInProgress, 5},
		{vo.StatusPending, 0},
		{vo.StatusResolved, 5},
	}
	for _, e := range entries {
		h, err := complaint.NewHistory(42, e.status, &msg, 1, ts(e.at))
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, h))
	}
	other, err := complaint.NewHistory(43, vo.StatusPending, nil, 1, ts(0))
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, other))

	rows, err := repo.ListByComplaint(ctx, 42)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, vo.StatusPending, rows[0].Status())
	assert.Equal(t, vo.StatusInProgress, rows[1].Status(), "timestamp ties keep insertion order")
	assert.Equal(t, vo.StatusResolved, rows[2].Status())
	require.NotNil(t, rows[1].Message())
	assert.Equal(t, "started", *rows[1].Message())

	latest, err := repo.Latest(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, latest.Status())

	none, err := repo.Latest(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, none)
}
