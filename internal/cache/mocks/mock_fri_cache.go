package mocks

import (
	"context"

	"fricoach/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFRICache struct {
	mock.Mock
}

func (m *MockFRICache) Get(ctx context.Context, customerID string) (*model.FRIResult, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FRIResult), args.Error(1)
}

func (m *MockFRICache) Set(ctx context.Context, customerID string, result *model.FRIResult) error {
	args := m.Called(ctx, customerID, result)
	return args.Error(0)
}
