package response

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestNewAttachment_Owner(t *testing.T) {
	tests := []struct {
		name        string
		complaintID *uint
		responseID  *uint
		wantErr     bool
	}{
		{"complaint only", uintPtr(1), nil, false},
		{"response only", nil, uintPtr(2), false},
		{"both", uintPtr(1), uintPtr(2), true},
		{"neither", nil, nil, true},
		{"zero owner", uintPtr(0), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAttachment("log.txt", "https://files.example.com/log.txt", "text/plain", 12, tt.complaintID, tt.responseID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAttachmentOwner)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewAttachment_Validation(t *testing.T) {
	_, err := NewAttachment("a.png", "not a url", "image/png", 1, uintPtr(1), nil)
	assert.Error(t, err)
	_, err = NewAttachment("a.png", "https://x.io/a.png", "image/png", 0, uintPtr(1), nil)
	assert.Error(t, err)
	_, err = NewAttachment(" ", "https://x.io/a.png", "image/png", 1, uintPtr(1), nil)
	assert.Error(t, err)
}

func TestResponse_Attach(t *testing.T) {
	r, err := NewResponse(3, 4, " thanks ")
	require.NoError(t, err)
	assert.Equal(t, "thanks", r.Message())

	_, err = r.Attach("a.png", "https://x.io/a.png", "image/png", 10)
	assert.Error(t, err, "unsaved response")

	require.NoError(t, r.SetID(9))
	a, err := r.Attach("a.png", "https://x.io/a.png", "image/png", 10)
	require.NoError(t, err)
	assert.Nil(t, a.ComplaintID())
	require.NotNil(t, a.ResponseID())
	assert.Equal(t, uint(9), *a.ResponseID())
	assert.Len(t, r.Attachments(), 1)
}

func TestResponse_Excerpt(t *testing.T) {
	r, err := NewResponse(1, 1, strings.Repeat("é", 10))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 4)+"...", r.Excerpt(4))
	assert.Equal(t, r.Message(), r.Excerpt(50))

	_, err = NewResponse(1, 1, "   ")
	assert.Error(t, err)
}
