package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"organizerdashboard/config"
	"organizerdashboard/internal/adapters/auth"
	"organizerdashboard/internal/adapters/organizer"
	delivery "organizerdashboard/internal/delivery/http"
	"organizerdashboard/internal/delivery/http/controllers"
	"organizerdashboard/internal/delivery/http/middleware"
	"organizerdashboard/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	logger.Info("starting organizer dashboard", "env", cfg.Environment, "organizer_api", cfg.OrganizerAPIURL)

	creds := auth.NewContextCredentialProvider(middleware.BearerTokenFromContext)
	httpClient := &http.Client{Timeout: cfg.OrganizerAPITimeout}
	api := organizer.NewClient(httpClient, cfg.OrganizerAPIURL, creds)

	aggregation := services.NewAggregationService(api, logger, cfg.AggregationConcurrency, cfg.OrganizerAPITimeout)
	events := services.NewEventService(api, logger)
	admission := services.NewAdmissionService(api, logger)
	invitations := services.NewInvitationService(api, logger, cfg.CompanyID)

	mux := delivery.NewRouter(
		controllers.NewDashboardController(logger, aggregation),
		controllers.NewEventController(logger, events),
		controllers.NewAdmissionController(logger, admission),
		controllers.NewInvitationController(logger, invitations),
	)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	if cfg.CORSOrigins != "" {
		handler = middleware.CORS(strings.Split(cfg.CORSOrigins, ","), handler)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop <- syscall.SIGTERM
		}
	}()

	sig := <-stop
	logger.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	logger.Info("stopped")
}
