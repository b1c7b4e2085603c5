package mocks

import (
	"context"

	"fricoach/internal/model"
	"fricoach/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCoachService struct {
	mock.Mock
}

func (m *MockCoachService) Advise(ctx context.Context, req service.AdviseRequest) (*model.CoachingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CoachingResponse), args.Error(1)
}

func (m *MockCoachService) Resilience(ctx context.Context, customerID string) (*model.FRIResult, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FRIResult), args.Error(1)
}

func (m *MockCoachService) History(ctx context.Context, customerID string, limit int) (*service.HistoryResult, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HistoryResult), args.Error(1)
}

func (m *MockCoachService) ArchiveTranscript(ctx context.Context, customerID string) (*service.ArchiveResult, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchiveResult), args.Error(1)
}
