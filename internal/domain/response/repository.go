package response

import "context"

type Repository interface {
	// Create stores the response row only; attachments go through
	// AttachmentRepository once the response ID is known.
	Create(ctx context.Context, r *Response) error
	// ListByComplaint returns responses oldest first with their attachments.
	ListByComplaint(ctx context.Context, complaintID uint) ([]*Response, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	// ListByComplaint returns attachments owned by the complaint itself.
	ListByComplaint(ctx context.Context, complaintID uint) ([]*Attachment, error)
}
