package jobs_test

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockLister struct {
	mock.Mock
}

func (m *MockLister) ListAwaitingRecommendation(ctx context.Context, limit int) ([]kernel.UUID, error) {
	args := m.Called(ctx, limit)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) Handle(ctx context.Context, cmd commands.RecommendPackagingCommand) (string, error) {
	args := m.Called(ctx, cmd.OrderID())
	return args.String(0), args.Error(1)
}

type MockQueueDepthReader struct {
	mock.Mock
}

func (m *MockQueueDepthReader) Handle(ctx context.Context, query queries.GetQueueDepthQuery) (queries.GetQueueDepthQueryResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(queries.GetQueueDepthQueryResponse)
	return resp, args.Error(1)
}
