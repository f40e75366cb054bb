package usecases

import (
	"context"

	"github.com/orris-inc/complaintdesk/internal/application/complaint/dto"
	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	permvo "github.com/orris-inc/complaintdesk/internal/domain/permission/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/response"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

type GetComplaintQuery struct {
	ComplaintID uint
	ActorID     uint
}

type GetComplaintUseCase struct {
	complaints  complaint.ComplaintRepository
	responses   response.Repository
	attachments response.AttachmentRepository
	users       user.Repository
	enforcer    permission.PermissionEnforcer
	logger      logger.Interface
}

func NewGetComplaintUseCase(
	complaints complaint.ComplaintRepository,
	responses response.Repository,
	attachments response.AttachmentRepository,
	users user.Repository,
	enforcer permission.PermissionEnforcer,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaints:  complaints,
		responses:   responses,
		attachments: attachments,
		users:       users,
		enforcer:    enforcer,
		logger:      logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDetailDTO, error) {
	if query.ComplaintID == 0 || query.ActorID == 0 {
		return nil, errors.NewValidationError("complaint ID and user ID are required")
	}

	c, err := loadComplaint(ctx, uc.complaints, query.ComplaintID)
	if err != nil {
		return nil, err
	}
	actor, err := loadUser(ctx, uc.users, query.ActorID, "user")
	if err != nil {
		return nil, err
	}
	if err := authorize(uc.enforcer, actor, c, permvo.ActionRead); err != nil {
		return nil, err
	}

	attachments, err := uc.attachments.ListByComplaint(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list complaint attachments", "complaint_id", c.ID(), "error", err)
		return nil, errors.NewPersistenceError("failed to load complaint", err.Error())
	}
	responses, err := uc.responses.ListByComplaint(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list complaint responses", "complaint_id", c.ID(), "error", err)
		return nil, errors.NewPersistenceError("failed to load complaint", err.Error())
	}

	allowed := make([]string, 0, 2)
	for _, target := range c.Status().AllowedTransitions() {
		ok, err := isAllowed(uc.enforcer, actor, c, permvo.TransitionAction(target.String()))
		if err != nil {
			return nil, err
		}
		if ok {
			allowed = append(allowed, target.String())
		}
	}

	return &dto.ComplaintDetailDTO{
		ComplaintDTO:       dto.ToComplaintDTO(c),
		Attachments:        dto.ToAttachmentDTOList(attachments),
		Responses:          dto.ToResponseDTOList(responses),
		AllowedTransitions: allowed,
	}, nil
}
