package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/financial-data-api/internal/config"
	"github.com/rogerio-castellano/financial-data-api/internal/financials"
	api "github.com/rogerio-castellano/financial-data-api/internal/http"
	"github.com/rogerio-castellano/financial-data-api/internal/http/handlers"
	"github.com/rogerio-castellano/financial-data-api/internal/logger"
	"github.com/rogerio-castellano/financial-data-api/internal/observability"
	"github.com/rogerio-castellano/financial-data-api/internal/repo"
)

const shutdownTimeout = 10 * time.Second

// @title Financial Data API
// @version 1.0
// @description Filters the annual AAPL income statements served by Financial Modeling Prep.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("❌ Could not load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	statements := repo.NewFMPIncomeStatementRepository(repo.FMPConfig{
		BaseURL:  cfg.UpstreamBaseURL,
		APIKey:   cfg.APIKey,
		Timeout:  cfg.UpstreamTimeout,
		Observer: metrics,
	})

	router := api.NewRouter(api.RouterParams{
		Server:  handlers.NewServer(financials.NewService(statements), log),
		Logger:  log,
		Metrics: metrics,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.UpstreamTimeout + 15*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("✅ Server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("❌ Server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
