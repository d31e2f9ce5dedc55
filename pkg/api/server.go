package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"taskapp/internal/infrastructure"
	"taskapp/pkg/config"
	"taskapp/pkg/logging"
	"taskapp/pkg/metrics"
)

// StartServer builds the container and serves until ctx is canceled,
// then drains in-flight requests.
func StartServer(ctx context.Context, cfg *config.Config, logger *logging.AppLogger, m *metrics.AppMetrics) error {
	container, err := infrastructure.NewContainer(ctx, cfg, logger, m)

	if err != nil {
		return err
	}

	defer container.Close()

	router := SetupRouter(Handlers{
		Auth: container.AuthHandler,
		Task: container.TaskHandler,
		JWT:  container.JWT,
	}, cfg, m)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("Server starting",
			"port", cfg.ServerPort,
			"environment", cfg.Environment,
			"rate_limit_enabled", cfg.RateLimitEnabled,
			"postgres", cfg.UsePostgres())

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
