package usecases

import (
	"context"

	"github.com/orris-inc/complaintdesk/internal/application/complaint/dto"
	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	permvo "github.com/orris-inc/complaintdesk/internal/domain/permission/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

type ListHistoryQuery struct {
	ComplaintID uint
	// ActorID zero skips the read check, for internal callers.
	ActorID uint
}

type ListHistoryUseCase struct {
	complaints complaint.ComplaintRepository
	history    complaint.HistoryRepository
	users      user.Repository
	enforcer   permission.PermissionEnforcer
	logger     logger.Interface
}

func NewListHistoryUseCase(
	complaints complaint.ComplaintRepository,
	history complaint.HistoryRepository,
	users user.Repository,
	enforcer permission.PermissionEnforcer,
	logger logger.Interface,
) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		complaints: complaints,
		history:    history,
		users:      users,
		enforcer:   enforcer,
		logger:     logger,
	}
}

// Execute returns the status ledger oldest first. Every call re-reads storage.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, query ListHistoryQuery) ([]*dto.HistoryDTO, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := loadComplaint(ctx, uc.complaints, query.ComplaintID)
	if err != nil {
		return nil, err
	}

	if query.ActorID != 0 {
		actor, err := loadUser(ctx, uc.users, query.ActorID, "user")
		if err != nil {
			return nil, err
		}
		if err := authorize(uc.enforcer, actor, c, permvo.ActionRead); err != nil {
			return nil, err
		}
	}

	rows, err := uc.history.ListByComplaint(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list complaint history", "complaint_id", c.ID(), "error", err)
		return nil, errors.NewPersistenceError("failed to list complaint history", err.Error())
	}

	return dto.ToHistoryDTOList(rows), nil
}
