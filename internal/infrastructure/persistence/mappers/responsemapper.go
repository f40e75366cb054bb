package mappers

import (
	"github.com/orris-inc/complaintdesk/internal/domain/response"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
)

func ResponseToEntity(m *models.ResponseModel) *response.Response {
	attachments := make([]*response.Attachment, 0, len(m.Attachments))
	for i := range m.Attachments {
		attachments = append(attachments, AttachmentToEntity(&m.Attachments[i]))
	}
	return response.ReconstructResponse(m.ID, m.ComplaintID, m.UserID, m.Message, attachments, m.CreatedAt.UTC())
}

// ResponseToModel maps the response row only; attachments are stored separately.
func ResponseToModel(r *response.Response) *models.ResponseModel {
	return &models.ResponseModel{
		ID:          r.ID(),
		ComplaintID: r.ComplaintID(),
		UserID:      r.UserID(),
		Message:     r.Message(),
		CreatedAt:   r.CreatedAt(),
	}
}

func AttachmentToEntity(m *models.AttachmentModel) *response.Attachment {
	return response.ReconstructAttachment(m.ID, m.FileName, m.FileURL, m.MimeType, m.Size, m.ComplaintID, m.ResponseID, m.CreatedAt.UTC())
}

func AttachmentToModel(a *response.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:          a.ID(),
		FileName:    a.FileName(),
		FileURL:     a.FileURL(),
		MimeType:    a.MimeType(),
		Size:        a.Size(),
		ComplaintID: a.ComplaintID(),
		ResponseID:  a.ResponseID(),
		CreatedAt:   a.CreatedAt(),
	}
}
