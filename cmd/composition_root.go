package cmd

import (
	"log/slog"

	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/kafka"
	"warehouse/internal/adapters/out/packaging"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/metrics"

	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  *kafka.Publisher
	optimizer  ports.PackagingOptimizer
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. Events are dropped when no Kafka brokers are
// configured, and packaging recommendations are skipped without an optimizer URL.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	m *metrics.Metrics,
	tp trace.TracerProvider,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:  config,
		gormDB:  gormDB,
		metrics: m,
		logger:  logger,
	}

	var publisher ports.EventPublisher
	if len(config.KafkaBrokers) > 0 {
		writer, err := kafka.NewWriter(config.KafkaBrokers, config.KafkaOrderEventsTopic, tp)
		if err != nil {
			return nil, err
		}
		c.publisher = kafka.NewPublisher(writer, logger)
		publisher = c.publisher
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)

	if config.OptimizerURL != "" {
		c.optimizer = packaging.NewClient(config.OptimizerURL, packaging.WithTimeout(config.OptimizerTimeout))
	}
	return c, nil
}

// Close releases the outbound connections.
func (c *CompositionRoot) Close() error {
	if c.publisher != nil {
		return c.publisher.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateRestockItemCommandHandler() commands.RestockItemCommandHandler {
	return commands.NewRestockItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.ReservationUoWFactory = FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
	if c.optimizer == nil {
		return commands.NewCreateOrderCommandHandler(f, nil, c.logger)
	}
	return commands.NewCreateOrderCommandHandler(f, c.CreateRecommendPackagingCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateRecommendPackagingCommandHandler() commands.RecommendPackagingCommandHandler {
	return commands.NewRecommendPackagingCommandHandler(c.fullUoWFactory(), c.optimizer)
}

func (c *CompositionRoot) CreateClaimNextOrderCommandHandler() commands.ClaimNextOrderCommandHandler {
	return commands.NewClaimNextOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateMarkCollectedCommandHandler() commands.MarkCollectedCommandHandler {
	return commands.NewMarkCollectedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordPackagingCommandHandler() commands.RecordPackagingCommandHandler {
	return commands.NewRecordPackagingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePlaceItemsCommandHandler() commands.PlaceItemsCommandHandler {
	return commands.NewPlaceItemsCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	return commands.NewCreateTableCommandHandler(c.stationUoWFactory())
}

func (c *CompositionRoot) CreateCreateCellCommandHandler() commands.CreateCellCommandHandler {
	return commands.NewCreateCellCommandHandler(c.stationUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTablesQueryHandler() queries.GetTablesQueryHandler {
	return queries.NewGetTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockReportQueryHandler() queries.GetStockReportQueryHandler {
	return queries.NewGetStockReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQueueDepthQueryHandler() queries.GetQueueDepthQueryHandler {
	return queries.NewGetQueueDepthQueryHandler(c.gormDB)
}

// CreateHTTPHandlers collects the use cases exposed by the HTTP API.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateItem:      c.CreateCreateItemCommandHandler(),
		RestockItem:     c.CreateRestockItemCommandHandler(),
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		ClaimNextOrder:  c.CreateClaimNextOrderCommandHandler(),
		MarkCollected:   c.CreateMarkCollectedCommandHandler(),
		RecordPackaging: c.CreateRecordPackagingCommandHandler(),
		PlaceItems:      c.CreatePlaceItemsCommandHandler(),
		CreateTable:     c.CreateCreateTableCommandHandler(),
		CreateCell:      c.CreateCreateCellCommandHandler(),
		GetOrderDetails: c.CreateGetOrderDetailsQueryHandler(),
		GetTables:       c.CreateGetTablesQueryHandler(),
		GetStockReport:  c.CreateGetStockReportQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var recommendationJob *jobs.PackagingRecommendationJob
	if c.optimizer != nil {
		recommendationJob = jobs.NewPackagingRecommendationJob(
			c.uowFactory.Create().OrderRepository(),
			c.CreateRecommendPackagingCommandHandler(),
			c.metrics,
			c.config.RecommendationSchedule,
			c.logger,
		)
	}
	queueMetricsJob := jobs.NewQueueMetricsJob(
		c.CreateGetQueueDepthQueryHandler(),
		c.metrics,
		c.config.QueueMetricsSchedule,
		c.logger,
	)
	return jobs.NewJobManager(recommendationJob, queueMetricsJob)
}

func (c *CompositionRoot) itemUoWFactory() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stationUoWFactory() commands.StationUoWFactory {
	return FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}

type FuncStationUoWFactory func() commands.StationUoW

func (f FuncStationUoWFactory) Create() commands.StationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
