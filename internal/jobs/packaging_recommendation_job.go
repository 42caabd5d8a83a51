package jobs

import (
	"context"
	"errors"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const recommendationBatchSize = 50

type awaitingRecommendationLister interface {
	ListAwaitingRecommendation(ctx context.Context, limit int) ([]kernel.UUID, error)
}

type packagingRecommender interface {
	Handle(ctx context.Context, cmd commands.RecommendPackagingCommand) (string, error)
}

// PackagingRecommendationJob retries the optimizer for forming orders that still have no
// recommended packaging, for example because the optimizer was down when they were created.
type PackagingRecommendationJob struct {
	lister      awaitingRecommendationLister
	recommender packagingRecommender
	metrics     *metrics.Metrics
	schedule    string
	cron        *cron.Cron
	logger      *slog.Logger
}

func NewPackagingRecommendationJob(
	lister awaitingRecommendationLister,
	recommender packagingRecommender,
	m *metrics.Metrics,
	schedule string,
	logger *slog.Logger,
) *PackagingRecommendationJob {
	return &PackagingRecommendationJob{
		lister:      lister,
		recommender: recommender,
		metrics:     m,
		schedule:    schedule,
		cron:        cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:      logger.With("component", "packaging_recommendation_job"),
	}
}

func (j *PackagingRecommendationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Packaging recommendation job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running pass to finish.
func (j *PackagingRecommendationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Packaging recommendation job stopped")
}

// Run makes one pass over the oldest orders awaiting a recommendation.
func (j *PackagingRecommendationJob) Run(ctx context.Context) {
	ids, err := j.lister.ListAwaitingRecommendation(ctx, recommendationBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list orders awaiting packaging", "error", err)
		return
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		j.recommend(ctx, id)
	}
}

func (j *PackagingRecommendationJob) recommend(ctx context.Context, orderID kernel.UUID) {
	cmd, err := commands.NewRecommendPackagingCommand(orderID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid order id", "order_id", orderID.String(), "error", err)
		return
	}

	packaging, err := j.recommender.Handle(ctx, cmd)
	switch {
	case errors.Is(err, ports.ErrNoRecommendation):
		j.metrics.Recommendations.WithLabelValues(metrics.RecommendationNone).Inc()
		j.logger.DebugContext(ctx, "Optimizer gave no recommendation", "order_id", orderID.String(), "error", err)
	case err != nil:
		j.metrics.Recommendations.WithLabelValues(metrics.RecommendationFailed).Inc()
		j.logger.ErrorContext(ctx, "Packaging recommendation failed", "order_id", orderID.String(), "error", err)
	default:
		j.metrics.Recommendations.WithLabelValues(metrics.RecommendationStored).Inc()
		j.logger.DebugContext(ctx, "Packaging recommended", "order_id", orderID.String(), "packaging", packaging)
	}
}
