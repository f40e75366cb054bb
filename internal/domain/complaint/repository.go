package complaint

import "context"

type ComplaintRepository interface {
	Create(ctx context.Context, c *Complaint) error
	// GetByID returns ErrComplaintNotFound when no row matches.
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	// CompareAndSwap persists c only when the stored version still equals
	// expectedVersion, returning ErrStatusConflict otherwise.
	CompareAndSwap(ctx context.Context, c *Complaint, expectedVersion int) error
}

type HistoryRepository interface {
	Append(ctx context.Context, h *History) error
	// ListByComplaint returns rows ordered by createdAt, then id.
	ListByComplaint(ctx context.Context, complaintID uint) ([]*History, error)
	// Latest returns nil when the complaint has no rows.
	Latest(ctx context.Context, complaintID uint) (*History, error)
}
