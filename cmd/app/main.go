package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse/cmd"
	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/pkg/logger"
	"warehouse/internal/pkg/metrics"
	"warehouse/internal/pkg/tracing"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var version = "dev"

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs); err != nil {
		log.Fatalf("Warehouse stopped: %v", err)
	}
}

func run(ctx context.Context, configs cmd.Config) error {
	appLogger := logger.New(configs.Env)

	tp, shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Endpoint: configs.OTLPEndpoint,
		Insecure: configs.OTLPInsecure,
		Version:  version,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			appLogger.Error("Failed to flush traces", "error", err)
		}
	}()

	if err = postgres.Migrate(ctx, configs.DSN()); err != nil {
		return err
	}
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	app, err := cmd.NewCompositionRoot(configs, gormDB, appMetrics, tp, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			appLogger.Error("Failed to close event publisher", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, appMetrics, registry, appLogger.With("component", "http"))
}

func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	configs cmd.Config,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	appLogger *slog.Logger,
) error {
	e, err := httpin.NewRouter(httpin.NewServer(app.CreateHTTPHandlers(), appLogger), httpin.RouterOptions{
		Logger:   appLogger,
		Metrics:  m,
		Gatherer: gatherer,
		Swagger:  configs.SwaggerEnabled,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", configs.HTTPPort),
		Handler:           otelhttp.NewHandler(e, "warehouse"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("HTTP server started", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	appLogger.Info("Shutting down HTTP server")
	return srv.Shutdown(shutdownCtx)
}
