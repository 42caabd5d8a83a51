package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

type queueDepthReader interface {
	Handle(ctx context.Context, query queries.GetQueueDepthQuery) (queries.GetQueueDepthQueryResponse, error)
}

// QueueMetricsJob publishes the number of claimable orders per table as a gauge.
type QueueMetricsJob struct {
	reader   queueDepthReader
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewQueueMetricsJob(reader queueDepthReader, m *metrics.Metrics, schedule string, logger *slog.Logger) *QueueMetricsJob {
	return &QueueMetricsJob{
		reader:   reader,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "queue_metrics_job"),
	}
}

func (j *QueueMetricsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue metrics job started", "schedule", j.schedule)
	return nil
}

func (j *QueueMetricsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Queue metrics job stopped")
}

// Run refreshes the gauge. Tables that no longer exist drop out of it.
func (j *QueueMetricsJob) Run(ctx context.Context) {
	resp, err := j.reader.Handle(ctx, queries.NewGetQueueDepthQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to read queue depth", "error", err)
		return
	}

	j.metrics.ClaimableOrders.Reset()
	for _, t := range resp.Tables {
		j.metrics.ClaimableOrders.WithLabelValues(t.TableName).Set(float64(t.Orders))
	}
}
