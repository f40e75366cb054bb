package handlers

import (
	"context"

	"github.com/orris-inc/complaintdesk/internal/application/complaint/dto"
	"github.com/orris-inc/complaintdesk/internal/application/complaint/usecases"
)

// Use case interfaces for ComplaintHandler - enables unit testing with mocks.

type submitComplaintUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitComplaintCommand) (*dto.ComplaintDTO, error)
}

type getComplaintUseCase interface {
	Execute(ctx context.Context, query usecases.GetComplaintQuery) (*dto.ComplaintDetailDTO, error)
}

type transitionComplaintUseCase interface {
	Execute(ctx context.Context, cmd usecases.TransitionComplaintCommand) (*dto.ComplaintDTO, error)
}

type assignComplaintUseCase interface {
	Execute(ctx context.Context, cmd usecases.AssignComplaintCommand) (*dto.ComplaintDTO, error)
}

type listHistoryUseCase interface {
	Execute(ctx context.Context, query usecases.ListHistoryQuery) ([]*dto.HistoryDTO, error)
}

type addResponseUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddResponseCommand) (*dto.ResponseDTO, error)
}
