package jobs_test

import (
	"testing"

	"warehouse/internal/jobs"
	"warehouse/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	manager := jobs.NewJobManager(
		jobs.NewPackagingRecommendationJob(&MockLister{}, &MockRecommender{}, m, "@every 1h", discardLogger()),
		jobs.NewQueueMetricsJob(&MockQueueDepthReader{}, m, "@every 1h", discardLogger()),
	)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartAll_StopsStartedJobsOnFailure(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	manager := jobs.NewJobManager(
		jobs.NewPackagingRecommendationJob(&MockLister{}, &MockRecommender{}, m, "@every 1h", discardLogger()),
		jobs.NewQueueMetricsJob(&MockQueueDepthReader{}, m, "bogus", discardLogger()),
	)

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue metrics job")
}

func TestJobManager_SkipsMissingJobs(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	manager := jobs.NewJobManager(nil, jobs.NewQueueMetricsJob(&MockQueueDepthReader{}, m, "@every 1h", discardLogger()))

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
