package jobs_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func recommendations(m *metrics.Metrics, result string) float64 {
	return testutil.ToFloat64(m.Recommendations.WithLabelValues(result))
}

func TestPackagingRecommendationJob_Run_CountsOutcomes(t *testing.T) {
	ctx := context.Background()
	stored, none, failed := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	lister := &MockLister{}
	lister.On("ListAwaitingRecommendation", ctx, mock.Anything).Return([]kernel.UUID{stored, none, failed}, nil).Once()
	recommender := &MockRecommender{}
	recommender.On("Handle", ctx, stored).Return("YMA", nil).Once()
	recommender.On("Handle", ctx, none).Return("", fmt.Errorf("optimizer: %w", ports.ErrNoRecommendation)).Once()
	recommender.On("Handle", ctx, failed).Return("", errors.New("database is down")).Once()
	m := metrics.New(prometheus.NewRegistry())

	job := jobs.NewPackagingRecommendationJob(lister, recommender, m, "@every 1s", discardLogger())
	job.Run(ctx)

	assert.InDelta(t, 1, recommendations(m, metrics.RecommendationStored), 0)
	assert.InDelta(t, 1, recommendations(m, metrics.RecommendationNone), 0)
	assert.InDelta(t, 1, recommendations(m, metrics.RecommendationFailed), 0)
	lister.AssertExpectations(t)
	recommender.AssertExpectations(t)
}

func TestPackagingRecommendationJob_Run_ListFailure(t *testing.T) {
	ctx := context.Background()
	lister := &MockLister{}
	lister.On("ListAwaitingRecommendation", ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()
	recommender := &MockRecommender{}
	m := metrics.New(prometheus.NewRegistry())

	job := jobs.NewPackagingRecommendationJob(lister, recommender, m, "@every 1s", discardLogger())
	job.Run(ctx)

	recommender.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	assert.InDelta(t, 0, recommendations(m, metrics.RecommendationFailed), 0)
}

func TestPackagingRecommendationJob_Run_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lister := &MockLister{}
	lister.On("ListAwaitingRecommendation", ctx, mock.Anything).Return([]kernel.UUID{kernel.NewUUID()}, nil).Once()
	recommender := &MockRecommender{}

	job := jobs.NewPackagingRecommendationJob(lister, recommender, metrics.New(prometheus.NewRegistry()), "@every 1s", discardLogger())
	job.Run(ctx)

	recommender.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestPackagingRecommendationJob_Start_InvalidSchedule(t *testing.T) {
	job := jobs.NewPackagingRecommendationJob(&MockLister{}, &MockRecommender{}, metrics.New(prometheus.NewRegistry()), "not a schedule", discardLogger())

	assert.Error(t, job.Start())
}
