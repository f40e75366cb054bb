package response

import (
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
)

const maxMessageLength = 10000

// Response is a threaded reply to a complaint. The message is stored
// already sanitized.
type Response struct {
	id          uint
	complaintID uint
	userID      uint
	message     string
	attachments []*Attachment
	createdAt   time.Time
}

func NewResponse(complaintID, userID uint, message string) (*Response, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	return &Response{
		complaintID: complaintID,
		userID:      userID,
		message:     message,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructResponse(id, complaintID, userID uint, message string, attachments []*Attachment, createdAt time.Time) *Response {
	return &Response{
		id:          id,
		complaintID: complaintID,
		userID:      userID,
		message:     message,
		attachments: attachments,
		createdAt:   createdAt,
	}
}

func (r *Response) ID() uint                   { return r.id }
func (r *Response) ComplaintID() uint          { return r.complaintID }
func (r *Response) UserID() uint               { return r.userID }
func (r *Response) Message() string            { return r.message }
func (r *Response) Attachments() []*Attachment { return r.attachments }
func (r *Response) CreatedAt() time.Time       { return r.createdAt }

func (r *Response) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("response ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("response ID cannot be zero")
	}
	r.id = id
	return nil
}

// Attach adds a file owned by this response. The response must be
// persisted first so the owner ID is known.
func (r *Response) Attach(fileName, fileURL, mimeType string, size int64) (*Attachment, error) {
	if r.id == 0 {
		return nil, fmt.Errorf("response must be saved before attaching files")
	}
	id := r.id
	a, err := NewAttachment(fileName, fileURL, mimeType, size, nil, &id)
	if err != nil {
		return nil, err
	}
	r.attachments = append(r.attachments, a)
	return a, nil
}

// Excerpt returns the first n runes of the message.
func (r *Response) Excerpt(n int) string {
	runes := []rune(r.message)
	if len(runes) <= n {
		return r.message
	}
	return string(runes[:n]) + "..."
}
