package handlers

import (
	"context"

	"github.com/orris-inc/complaintdesk/internal/application/team/dto"
	"github.com/orris-inc/complaintdesk/internal/application/team/usecases"
)

type addMemberUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddMemberCommand) (*dto.MemberDTO, error)
}

type removeMemberUseCase interface {
	Execute(ctx context.Context, cmd usecases.RemoveMemberCommand) error
}
