package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/application/complaint/dto"
	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	vo "github.com/orris-inc/complaintdesk/internal/domain/complaint/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/project"
	"github.com/orris-inc/complaintdesk/internal/domain/response"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
	"github.com/orris-inc/complaintdesk/internal/shared/utils"
)

type SubmitComplaintCommand struct {
	ClientID    uint                  `json:"client_id" validate:"required"`
	ProjectID   uint                  `json:"project_id" validate:"required"`
	Title       string                `json:"title" validate:"required,max=200"`
	Description string                `json:"description" validate:"required,max=10000"`
	Category    string                `json:"category" validate:"required,oneof=BUG DELAY QUALITY COMMUNICATION OTHER"`
	Priority    string                `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Attachments []dto.AttachmentInput `json:"attachments" validate:"max=10,dive"`
}

type SubmitComplaintUseCase struct {
	complaints  complaint.ComplaintRepository
	history     complaint.HistoryRepository
	attachments response.AttachmentRepository
	users       user.Repository
	projects    project.Repository
	txManager   db.Transactor
	recorder    ActivityRecorder
	outbox      EventOutbox
	logger      logger.Interface
}

func NewSubmitComplaintUseCase(
	complaints complaint.ComplaintRepository,
	history complaint.HistoryRepository,
	attachments response.AttachmentRepository,
	users user.Repository,
	projects project.Repository,
	txManager db.Transactor,
	recorder ActivityRecorder,
	outbox EventOutbox,
	logger logger.Interface,
) *SubmitComplaintUseCase {
	return &SubmitComplaintUseCase{
		complaints:  complaints,
		history:     history,
		attachments: attachments,
		users:       users,
		projects:    projects,
		txManager:   txManager,
		recorder:    recorder,
		outbox:      outbox,
		logger:      logger,
	}
}

func (uc *SubmitComplaintUseCase) Execute(ctx context.Context, cmd SubmitComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing submit complaint use case", "client_id", cmd.ClientID, "project_id", cmd.ProjectID)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid submit command", "error", err)
		return nil, err
	}

	client, err := loadUser(ctx, uc.users, cmd.ClientID, "client")
	if err != nil {
		return nil, err
	}
	if !client.Role().IsClient() {
		return nil, errors.NewInvalidRoleError(fmt.Sprintf("user %d has role %s; only clients submit complaints", client.ID(), client.Role()))
	}

	if _, err := uc.projects.GetByID(ctx, cmd.ProjectID); err != nil {
		if stderrors.Is(err, project.ErrProjectNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", cmd.ProjectID))
		}
		return nil, errors.NewPersistenceError("failed to load project", err.Error())
	}

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		priority = vo.Priority(cmd.Priority)
	}

	c, err := complaint.NewComplaint(cmd.Title, cmd.Description, vo.Category(cmd.Category), priority, client.ID(), cmd.ProjectID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.complaints.Create(txCtx, c); err != nil {
			return err
		}

		h, err := complaint.NewHistory(c.ID(), c.Status(), nil, client.ID(), c.CreatedAt())
		if err != nil {
			return err
		}
		if err := uc.history.Append(txCtx, h); err != nil {
			return err
		}

		complaintID := c.ID()
		for _, in := range cmd.Attachments {
			a, err := response.NewAttachment(in.FileName, in.FileURL, in.MimeType, in.Size, &complaintID, nil)
			if err != nil {
				return errors.NewValidationError("invalid attachment", err.Error())
			}
			if err := uc.attachments.Create(txCtx, a); err != nil {
				return err
			}
		}

		if err := uc.recorder.Record(txCtx, client.ID(), activity.ActionComplaintSubmitted, c.ID(), map[string]any{
			"project_id": cmd.ProjectID,
			"category":   c.Category().String(),
			"priority":   c.Priority().String(),
		}); err != nil {
			return err
		}

		return uc.outbox.Append(txCtx, complaint.NewSubmittedEvent(c))
	})
	if err != nil {
		uc.logger.Errorw("failed to submit complaint", "client_id", cmd.ClientID, "error", err)
		return nil, mapError(err, "submit complaint")
	}

	uc.outbox.Notify()

	uc.logger.Infow("complaint submitted", "complaint_id", c.ID(), "client_id", client.ID(), "project_id", cmd.ProjectID)
	return dto.ToComplaintDTO(c), nil
}
