package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	recommendationJob *PackagingRecommendationJob
	queueMetricsJob   *QueueMetricsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(recommendationJob *PackagingRecommendationJob, queueMetricsJob *QueueMetricsJob) *JobManager {
	return &JobManager{
		recommendationJob: recommendationJob,
		queueMetricsJob:   queueMetricsJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	started := make([]job, 0, 2)
	for _, nj := range jm.jobs() {
		if err := nj.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, j := range started {
				j.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
		started = append(started, nj.job)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, nj := range jm.jobs() {
		nj.job.Stop()
	}
}

type namedJob struct {
	name string
	job  job
}

// jobs lists the configured jobs. The recommendation job is absent when no packaging
// optimizer is configured.
func (jm *JobManager) jobs() []namedJob {
	var out []namedJob
	if jm.recommendationJob != nil {
		out = append(out, namedJob{name: "packaging recommendation", job: jm.recommendationJob})
	}
	if jm.queueMetricsJob != nil {
		out = append(out, namedJob{name: "queue metrics", job: jm.queueMetricsJob})
	}
	return out
}

var (
	_ job = (*PackagingRecommendationJob)(nil)
	_ job = (*QueueMetricsJob)(nil)
)
