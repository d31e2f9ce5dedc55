package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"taskapp/pkg/api"
	"taskapp/pkg/config"
	"taskapp/pkg/logging"
	"taskapp/pkg/metrics"
	"taskapp/pkg/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()

	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := logging.New("taskapp")

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	telemetry, err := tracing.InitTelemetry(tracing.TelemetryConfig{
		ServiceName:    "taskapp",
		ServiceVersion: "1.0.0",
		MetricsPort:    cfg.MetricsPort,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Environment:    cfg.Environment,
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer telemetry.Shutdown(context.Background())

	appMetrics := metrics.NewAppMetrics(telemetry.PrometheusRegistry)

	if err := api.StartServer(ctx, cfg, logger, appMetrics); err != nil {
		log.Fatal("Server failed:", err)
	}
}
