package handlers

import (
	"context"

	complaintdto "github.com/orris-inc/complaintdesk/internal/application/complaint/dto"
	complaintuc "github.com/orris-inc/complaintdesk/internal/application/complaint/usecases"
	notificationdto "github.com/orris-inc/complaintdesk/internal/application/notification/dto"
	teamdto "github.com/orris-inc/complaintdesk/internal/application/team/dto"
	teamuc "github.com/orris-inc/complaintdesk/internal/application/team/usecases"
)

type mockSubmitUC struct {
	executeFn func(ctx context.Context, cmd complaintuc.SubmitComplaintCommand) (*complaintdto.ComplaintDTO, error)
}

func (m *mockSubmitUC) Execute(ctx context.Context, cmd complaintuc.SubmitComplaintCommand) (*complaintdto.ComplaintDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockGetUC struct {
	executeFn func(ctx context.Context, query complaintuc.GetComplaintQuery) (*complaintdto.ComplaintDetailDTO, error)
}

func (m *mockGetUC) Execute(ctx context.Context, query complaintuc.GetComplaintQuery) (*complaintdto.ComplaintDetailDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return nil, nil
}

type mockTransitionUC struct {
	executeFn func(ctx context.Context, cmd complaintuc.TransitionComplaintCommand) (*complaintdto.ComplaintDTO, error)
}

func (m *mockTransitionUC) Execute(ctx context.Context, cmd complaintuc.TransitionComplaintCommand) (*complaintdto.ComplaintDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockAssignUC struct {
	executeFn func(ctx context.Context, cmd complaintuc.AssignComplaintCommand) (*complaintdto.ComplaintDTO, error)
}

func (m *mockAssignUC) Execute(ctx context.Context, cmd complaintuc.AssignComplaintCommand) (*complaintdto.ComplaintDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockHistoryUC struct {
	executeFn func(ctx context.Context, query complaintuc.ListHistoryQuery) ([]*complaintdto.HistoryDTO, error)
}

func (m *mockHistoryUC) Execute(ctx context.Context, query complaintuc.ListHistoryQuery) ([]*complaintdto.HistoryDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return nil, nil
}

type mockAddResponseUC struct {
	executeFn func(ctx context.Context, cmd complaintuc.AddResponseCommand) (*complaintdto.ResponseDTO, error)
}

func (m *mockAddResponseUC) Execute(ctx context.Context, cmd complaintuc.AddResponseCommand) (*complaintdto.ResponseDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockListNotificationsUC struct {
	executeFn func(ctx context.Context, req notificationdto.ListNotificationsRequest) (*notificationdto.ListNotificationsResponse, error)
}

func (m *mockListNotificationsUC) Execute(ctx context.Context, req notificationdto.ListNotificationsRequest) (*notificationdto.ListNotificationsResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, req)
	}
	return &notificationdto.ListNotificationsResponse{}, nil
}

type mockMarkReadUC struct {
	executeFn func(ctx context.Context, notificationID, userID uint) (*notificationdto.NotificationDTO, error)
}

func (m *mockMarkReadUC) Execute(ctx context.Context, notificationID, userID uint) (*notificationdto.NotificationDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, notificationID, userID)
	}
	return nil, nil
}

type mockAddMemberUC struct {
	executeFn func(ctx context.Context, cmd teamuc.AddMemberCommand) (*teamdto.MemberDTO, error)
}

func (m *mockAddMemberUC) Execute(ctx context.Context, cmd teamuc.AddMemberCommand) (*teamdto.MemberDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockRemoveMemberUC struct {
	executeFn func(ctx context.Context, cmd teamuc.RemoveMemberCommand) error
}

func (m *mockRemoveMemberUC) Execute(ctx context.Context, cmd teamuc.RemoveMemberCommand) error {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil
}
