// Package jobs provides scheduled background tasks for the warehouse.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds) and never
// overlap with themselves: a pass that is still running when the next tick fires makes
// that tick a no-op.
//
// # Available Jobs
//
// 1. PackagingRecommendationJob - asks the packaging optimizer again for forming orders
// that were created while it was unavailable
// 2. QueueMetricsJob - exports the number of claimable orders per table
//
// # Usage
//
//	jobManager := jobs.NewJobManager(recommendationJob, queueMetricsJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A missing recommendation is expected and only logged at debug level. Every other
// failure is logged and the pass moves on to the next order.
package jobs
