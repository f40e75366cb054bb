package usecases

import (
	"context"

	"github.com/orris-inc/complaintdesk/internal/application/complaint/dto"
	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	permvo "github.com/orris-inc/complaintdesk/internal/domain/permission/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/response"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
	"github.com/orris-inc/complaintdesk/internal/shared/services/markdown"
	"github.com/orris-inc/complaintdesk/internal/shared/utils"
)

const responseExcerptLength = 200

type AddResponseCommand struct {
	ComplaintID uint                  `json:"complaint_id" validate:"required"`
	AuthorID    uint                  `json:"author_id" validate:"required"`
	Message     string                `json:"message" validate:"required,max=10000"`
	Attachments []dto.AttachmentInput `json:"attachments" validate:"max=10,dive"`
}

type AddResponseUseCase struct {
	complaints  complaint.ComplaintRepository
	responses   response.Repository
	attachments response.AttachmentRepository
	users       user.Repository
	enforcer    permission.PermissionEnforcer
	sanitizer   markdown.MarkdownService
	txManager   db.Transactor
	recorder    ActivityRecorder
	outbox      EventOutbox
	logger      logger.Interface
}

func NewAddResponseUseCase(
	complaints complaint.ComplaintRepository,
	responses response.Repository,
	attachments response.AttachmentRepository,
	users user.Repository,
	enforcer permission.PermissionEnforcer,
	sanitizer markdown.MarkdownService,
	txManager db.Transactor,
	recorder ActivityRecorder,
	outbox EventOutbox,
	logger logger.Interface,
) *AddResponseUseCase {
	return &AddResponseUseCase{
		complaints:  complaints,
		responses:   responses,
		attachments: attachments,
		users:       users,
		enforcer:    enforcer,
		sanitizer:   sanitizer,
		txManager:   txManager,
		recorder:    recorder,
		outbox:      outbox,
		logger:      logger,
	}
}

func (uc *AddResponseUseCase) Execute(ctx context.Context, cmd AddResponseCommand) (*dto.ResponseDTO, error) {
	uc.logger.Infow("executing add response use case", "complaint_id", cmd.ComplaintID, "author_id", cmd.AuthorID)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid add response command", "error", err)
		return nil, err
	}

	c, err := loadComplaint(ctx, uc.complaints, cmd.ComplaintID)
	if err != nil {
		return nil, err
	}
	author, err := loadUser(ctx, uc.users, cmd.AuthorID, "user")
	if err != nil {
		return nil, err
	}

	if err := authorize(uc.enforcer, author, c, permvo.ActionRespond); err != nil {
		uc.logger.Warnw("response forbidden", "complaint_id", c.ID(), "author_id", author.ID())
		return nil, err
	}
	if err := c.EnsureOpen(); err != nil {
		return nil, mapError(err, "add response")
	}

	r, err := response.NewResponse(c.ID(), author.ID(), uc.sanitizer.StripTags(cmd.Message))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	readVersion := c.Version()
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// A close or withdrawal committed since the read fails the version check.
		if err := c.Touch(biztime.NowUTC()); err != nil {
			return err
		}
		if err := uc.complaints.CompareAndSwap(txCtx, c, readVersion); err != nil {
			return err
		}
		if err := uc.responses.Create(txCtx, r); err != nil {
			return err
		}

		for _, in := range cmd.Attachments {
			a, err := r.Attach(in.FileName, in.FileURL, in.MimeType, in.Size)
			if err != nil {
				return errors.NewValidationError("invalid attachment", err.Error())
			}
			if err := uc.attachments.Create(txCtx, a); err != nil {
				return err
			}
		}

		if err := uc.recorder.Record(txCtx, author.ID(), activity.ActionComplaintResponded, c.ID(), map[string]any{
			"response_id": r.ID(),
			"attachments": len(r.Attachments()),
		}); err != nil {
			return err
		}

		return uc.outbox.Append(txCtx, complaint.NewResponseAddedEvent(c, r.ID(), author.ID(), r.Excerpt(responseExcerptLength)))
	})
	if err != nil {
		uc.logger.Errorw("failed to add response", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, mapError(err, "add response")
	}

	uc.outbox.Notify()

	uc.logger.Infow("response added", "complaint_id", c.ID(), "response_id", r.ID(), "author_id", author.ID())
	return dto.ToResponseDTO(r), nil
}
