package complaint

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/orris-inc/complaintdesk/internal/domain/complaint/valueobjects"
)

// History is one immutable ledger row per status change.
type History struct {
	id          uint
	complaintID uint
	status      vo.ComplaintStatus
	message     *string
	userID      uint
	createdAt   time.Time
}

func NewHistory(complaintID uint, status vo.ComplaintStatus, message *string, userID uint, at time.Time) (*History, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	var msg *string
	if message != nil {
		if trimmed := strings.TrimSpace(*message); trimmed != "" {
			if len(trimmed) > 2000 {
				return nil, fmt.Errorf("history message exceeds maximum length of 2000 characters")
			}
			msg = &trimmed
		}
	}

	return &History{
		complaintID: complaintID,
		status:      status,
		message:     msg,
		userID:      userID,
		createdAt:   at,
	}, nil
}

func ReconstructHistory(id, complaintID uint, status vo.ComplaintStatus, message *string, userID uint, createdAt time.Time) *History {
	return &History{
		id:          id,
		complaintID: complaintID,
		status:      status,
		message:     message,
		userID:      userID,
		createdAt:   createdAt,
	}
}

func (h *History) ID() uint                   { return h.id }
func (h *History) ComplaintID() uint          { return h.complaintID }
func (h *History) Status() vo.ComplaintStatus { return h.status }
func (h *History) Message() *string           { return h.message }
func (h *History) UserID() uint               { return h.userID }
func (h *History) CreatedAt() time.Time       { return h.createdAt }

func (h *History) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history ID is already set")
	}
	h.id = id
	return nil
}
