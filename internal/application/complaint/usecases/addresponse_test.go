package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/complaintdesk/internal/application/complaint/dto"
	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	vo "github.com/orris-inc/complaintdesk/internal/domain/complaint/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

func newAddResponseUseCase(f *fixture) *AddResponseUseCase {
	return NewAddResponseUseCase(f.complaints, f.responses, f.attachments, f.users, f.enforcer, stripSanitizer{},
		f.store, f.recorder, f.outbox, logger.NewNop())
}

func TestAddResponse_ClientReplies(t *testing.T) {
	f := newFixture()
	f.seedComplaint(vo.StatusInProgress, uintPtr(supportID))
	uc := newAddResponseUseCase(f)

	got, err := uc.Execute(context.Background(), AddResponseCommand{
		ComplaintID: complaintID,
		AuthorID:    clientID,
		Message:     "Still <b>broken</b> after the update",
		Attachments: []dto.AttachmentInput{
			{FileName: "shot.png", FileURL: "https://files.example.com/shot.png", MimeType: "image/png", Size: 512},
		},
	})

	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, "Still broken after the update", got.Message)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "shot.png", got.Attachments[0].FileName)

	// Response attachments are not complaint attachments.
	complaintAtts, err := f.attachments.ListByComplaint(context.Background(), complaintID)
	require.NoError(t, err)
	assert.Empty(t, complaintAtts)

	assert.Equal(t, vo.StatusInProgress, f.store.stored(complaintID).Status())
	assert.Equal(t, []activity.Action{activity.ActionComplaintResponded}, f.store.actions())

	evts := f.store.events()
	require.Len(t, evts, 1)
	assert.Equal(t, events.TypeNewResponse, evts[0].EventType)
	assert.Equal(t, got.ID, evts[0].Complaint.ResponseID)
	assert.Equal(t, clientID, evts[0].ActorID)
	assert.Equal(t, "Still broken after the update", evts[0].Message)
}

func TestAddResponse_LongMessageIsExcerptedInEvent(t *testing.T) {
	f := newFixture()
	f.seedComplaint(vo.StatusPending, nil)
	uc := newAddResponseUseCase(f)

	_, err := uc.Execute(context.Background(), AddResponseCommand{
		ComplaintID: complaintID,
		AuthorID:    supportID,
		Message:     strings.Repeat("a", 500),
	})

	require.NoError(t, err)
	evts := f.store.events()
	require.Len(t, evts, 1)
	assert.Less(t, len(evts[0].Message), 500)
	assert.True(t, strings.HasSuffix(evts[0].Message, "..."))
}

func TestAddResponse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   vo.ComplaintStatus
		authorID uint
		message  string
		check    func(error) bool
	}{
		{"stranger", vo.StatusPending, otherClientID, "hello", errors.IsForbiddenError},
		{"forbidden beats terminal", vo.StatusClosed, otherClientID, "hello", errors.IsForbiddenError},
		{"closed complaint", vo.StatusClosed, clientID, "hello", errors.IsTerminalStateError},
		{"withdrawn complaint", vo.StatusWithdrawn, supportID, "hello", errors.IsTerminalStateError},
		{"markup only", vo.StatusPending, clientID, "<script></script>", errors.IsValidationError},
		{"empty", vo.StatusPending, clientID, "", errors.IsValidationError},
		{"unknown author", vo.StatusPending, 999, "hello", errors.IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.seedComplaint(tt.status, nil)
			uc := newAddResponseUseCase(f)

			_, err := uc.Execute(context.Background(), AddResponseCommand{
				ComplaintID: complaintID,
				AuthorID:    tt.authorID,
				Message:     tt.message,
			})

			assert.True(t, tt.check(err), "got %v", err)
			assert.Empty(t, f.store.events())
			f.store.mu.Lock()
			assert.Empty(t, f.store.responses)
			f.store.mu.Unlock()
		})
	}
}

func TestAddResponse_ComplaintWithdrawnMeanwhile(t *testing.T) {
	f := newFixture()
	snapshot := f.seedComplaint(vo.StatusInProgress, uintPtr(supportID))
	f.seedComplaint(vo.StatusWithdrawn, uintPtr(supportID))
	f.complaints.GetByIDFunc = func(ctx context.Context, id uint) (*complaint.Complaint, error) {
		return cloneComplaint(snapshot), nil
	}

	_, err := newAddResponseUseCase(f).Execute(context.Background(), AddResponseCommand{
		ComplaintID: complaintID,
		AuthorID:    supportID,
		Message:     "Deploying a fix now",
	})

	assert.True(t, errors.IsConflictError(err), "got %v", err)
	assert.Equal(t, vo.StatusWithdrawn, f.store.stored(complaintID).Status())
	assert.Empty(t, f.store.events())
	f.store.mu.Lock()
	assert.Empty(t, f.store.responses)
	f.store.mu.Unlock()
}

func TestAddResponse_KeepsComplaintVersion(t *testing.T) {
	f := newFixture()
	f.seedComplaint(vo.StatusPending, nil)

	_, err := newAddResponseUseCase(f).Execute(context.Background(), AddResponseCommand{
		ComplaintID: complaintID,
		AuthorID:    clientID,
		Message:     "Any update?",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, f.store.stored(complaintID).Version())
}
