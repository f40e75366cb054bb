package dto

import (
	"time"

	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	"github.com/orris-inc/complaintdesk/internal/domain/response"
)

type ComplaintDTO struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	ClientID      uint       `json:"client_id"`
	AssigneeID    *uint      `json:"assignee_id"`
	ProjectID     uint       `json:"project_id"`
	Version       int        `json:"version"`
	ResponseDueAt time.Time  `json:"response_due_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
}

type ComplaintDetailDTO struct {
	*ComplaintDTO
	Attachments []*AttachmentDTO `json:"attachments"`
	Responses   []*ResponseDTO   `json:"responses"`
	// AllowedTransitions lists the targets the requesting user may choose.
	AllowedTransitions []string `json:"allowed_transitions"`
}

type HistoryDTO struct {
	ID          uint      `json:"id"`
	ComplaintID uint      `json:"complaint_id"`
	Status      string    `json:"status"`
	Message     *string   `json:"message,omitempty"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ResponseDTO struct {
	ID          uint             `json:"id"`
	ComplaintID uint             `json:"complaint_id"`
	UserID      uint             `json:"user_id"`
	Message     string           `json:"message"`
	Attachments []*AttachmentDTO `json:"attachments"`
	CreatedAt   time.Time        `json:"created_at"`
}

type AttachmentDTO struct {
	ID        uint      `json:"id"`
	FileName  string    `json:"file_name"`
	FileURL   string    `json:"file_url"`
	MimeType  string    `json:"mime_type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// AttachmentInput describes a file uploaded elsewhere and referenced by URL.
type AttachmentInput struct {
	FileName string `json:"file_name" validate:"required,max=255"`
	FileURL  string `json:"file_url" validate:"required,url"`
	MimeType string `json:"mime_type" validate:"required,max=100"`
	Size     int64  `json:"size" validate:"gt=0"`
}

func ToComplaintDTO(c *complaint.Complaint) *ComplaintDTO {
	if c == nil {
		return nil
	}
	return &ComplaintDTO{
		ID:            c.ID(),
		Title:         c.Title(),
		Description:   c.Description(),
		Category:      c.Category().String(),
		Status:        c.Status().String(),
		Priority:      c.Priority().String(),
		ClientID:      c.ClientID(),
		AssigneeID:    c.AssigneeID(),
		ProjectID:     c.ProjectID(),
		Version:       c.Version(),
		ResponseDueAt: c.ResponseDueAt(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
		ResolvedAt:    c.ResolvedAt(),
		ClosedAt:      c.ClosedAt(),
	}
}

func ToHistoryDTOList(rows []*complaint.History) []*HistoryDTO {
	out := make([]*HistoryDTO, 0, len(rows))
	for _, h := range rows {
		out = append(out, &HistoryDTO{
			ID:          h.ID(),
			ComplaintID: h.ComplaintID(),
			Status:      h.Status().String(),
			Message:     h.Message(),
			UserID:      h.UserID(),
			CreatedAt:   h.CreatedAt(),
		})
	}
	return out
}

func ToAttachmentDTOList(items []*response.Attachment) []*AttachmentDTO {
	out := make([]*AttachmentDTO, 0, len(items))
	for _, a := range items {
		out = append(out, &AttachmentDTO{
			ID:        a.ID(),
			FileName:  a.FileName(),
			FileURL:   a.FileURL(),
			MimeType:  a.MimeType(),
			Size:      a.Size(),
			CreatedAt: a.CreatedAt(),
		})
	}
	return out
}

func ToResponseDTO(r *response.Response) *ResponseDTO {
	if r == nil {
		return nil
	}
	return &ResponseDTO{
		ID:          r.ID(),
		ComplaintID: r.ComplaintID(),
		UserID:      r.UserID(),
		Message:     r.Message(),
		Attachments: ToAttachmentDTOList(r.Attachments()),
		CreatedAt:   r.CreatedAt(),
	}
}

func ToResponseDTOList(items []*response.Response) []*ResponseDTO {
	out := make([]*ResponseDTO, 0, len(items))
	for _, r := range items {
		out = append(out, ToResponseDTO(r))
	}
	return out
}
