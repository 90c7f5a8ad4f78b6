package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowdesk-be/internal/address"
	"glowdesk-be/internal/analytics"
	"glowdesk-be/internal/booking"
	"glowdesk-be/internal/category"
	"glowdesk-be/internal/config"
	"glowdesk-be/internal/db"
	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/metrics"
	"glowdesk-be/internal/middleware"
	"glowdesk-be/internal/notification"
	"glowdesk-be/internal/payout"
	"glowdesk-be/internal/rest"
	"glowdesk-be/internal/review"
	"glowdesk-be/internal/user"
	"glowdesk-be/internal/utils"
	"glowdesk-be/internal/vendor"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	initDBFunc      = db.InitDB
	startServerFunc = func(srv *http.Server) error {
		return srv.ListenAndServe()
	}
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	go limiter.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           newServer(cfg, database, limiter),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- startServerFunc(srv)
	}()
	logger.L().Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newServer wires repositories and services into the HTTP handler.
func newServer(cfg *config.Config, database *sql.DB, limiter *middleware.RateLimiter) http.Handler {
	userSvc := user.NewService(user.NewRepository(database))
	addressSvc := address.NewService(address.NewRepository(database))
	categorySvc := category.NewService(category.NewRepository(database))
	notificationSvc := notification.NewService(notification.NewRepository(database))

	vendorSvc := vendor.NewService(
		vendor.NewRepository(database),
		categorySvc,
		userSvc,
		notificationSvc,
		cfg.DefaultCommissionBps,
	)
	bookingSvc := booking.NewService(
		booking.NewRepository(database),
		vendorSvc,
		addressSvc,
		notificationSvc,
	)
	payoutSvc := payout.NewService(payout.NewRepository(database), vendorSvc, notificationSvc)
	reviewSvc := review.NewService(review.NewRepository(database), bookingSvc)
	analyticsSvc := analytics.NewService(analytics.NewRepository(database))

	h := &rest.Handler{
		Users:         userSvc,
		Addresses:     addressSvc,
		Categories:    categorySvc,
		Vendors:       vendorSvc,
		Bookings:      bookingSvc,
		Payouts:       payoutSvc,
		Reviews:       reviewSvc,
		Notifications: notificationSvc,
		Analytics:     analyticsSvc,
		SecureCookies: cfg.AppEnv == "production",
	}

	return setupRouter(h, cfg.CORSOrigins, limiter)
}

func setupRouter(h *rest.Handler, origins []string, limiter *middleware.RateLimiter) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.Use(metrics.InstrumentHandler, middleware.AuthMiddleware, limiter.Middleware)
	h.Register(r)

	// CORS sits outside the router so preflights reach it before method matching.
	return logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.CORS(origins)(r),
		),
	)
}
