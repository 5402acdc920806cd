package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bjarke-xyz/applications-api/internal/config"
	"github.com/bjarke-xyz/applications-api/internal/domain"
	"github.com/bjarke-xyz/applications-api/internal/repository"
	serverPkg "github.com/bjarke-xyz/applications-api/internal/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func ServerCmd(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Env, "api")

	pool, err := newDatabasePool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("error creating db pool: %w", err)
	}
	defer pool.Close()

	newRepositories := func() domain.RepositoryWrapper {
		return repository.NewWrapper(pool)
	}
	server := serverPkg.NewServer(logger, newRepositories, cfg.APIKeyHash)
	srv := server.Server(cfg.Port)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler: mux,
	}

	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
		}
	}()
	logger.Info("started server", slog.Int("port", cfg.Port), slog.Int("metricsPort", cfg.MetricsPort))
	<-ctx.Done()

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = metricsSrv.Shutdown(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
