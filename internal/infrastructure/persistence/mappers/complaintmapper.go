package mappers

import (
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	vo "github.com/orris-inc/complaintdesk/internal/domain/complaint/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
)

func ComplaintToEntity(m *models.ComplaintModel) (*complaint.Complaint, error) {
	if m == nil {
		return nil, nil
	}
	c, err := complaint.ReconstructComplaint(
		m.ID,
		m.Title,
		m.Description,
		vo.Category(m.Category),
		vo.ComplaintStatus(m.Status),
		vo.Priority(m.Priority),
		m.ClientID,
		m.AssigneeID,
		m.ProjectID,
		m.Version,
		m.CreatedAt.UTC(),
		m.UpdatedAt.UTC(),
		utcPtr(m.ResolvedAt),
		utcPtr(m.ClosedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct complaint %d: %w", m.ID, err)
	}
	return c, nil
}

func ComplaintToModel(c *complaint.Complaint) *models.ComplaintModel {
	return &models.ComplaintModel{
		ID:          c.ID(),
		Title:       c.Title(),
		Description: c.Description(),
		Category:    c.Category().String(),
		Status:      c.Status().String(),
		Priority:    c.Priority().String(),
		ClientID:    c.ClientID(),
		AssigneeID:  c.AssigneeID(),
		ProjectID:   c.ProjectID(),
		Version:     c.Version(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		ResolvedAt:  c.ResolvedAt(),
		ClosedAt:    c.ClosedAt(),
	}
}

func HistoryToEntity(m *models.ComplaintHistoryModel) *complaint.History {
	return complaint.ReconstructHistory(m.ID, m.ComplaintID, vo.ComplaintStatus(m.Status), m.Message, m.UserID, m.CreatedAt.UTC())
}

func HistoryToEntities(rows []*models.ComplaintHistoryModel) []*complaint.History {
	out := make([]*complaint.History, 0, len(rows))
	for _, m := range rows {
		out = append(out, HistoryToEntity(m))
	}
	return out
}

func HistoryToModel(h *complaint.History) *models.ComplaintHistoryModel {
	return &models.ComplaintHistoryModel{
		ID:          h.ID(),
		ComplaintID: h.ComplaintID(),
		Status:      h.Status().String(),
		Message:     h.Message(),
		UserID:      h.UserID(),
		CreatedAt:   h.CreatedAt(),
	}
}
