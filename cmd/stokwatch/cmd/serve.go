package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/stokwatch/stokwatch/internal/api/handlers"
	"github.com/stokwatch/stokwatch/internal/api/middleware"
	"github.com/stokwatch/stokwatch/internal/config"
	"github.com/stokwatch/stokwatch/internal/engine"
	"github.com/stokwatch/stokwatch/internal/notify"
	"github.com/stokwatch/stokwatch/internal/scrape"
	"github.com/stokwatch/stokwatch/internal/store"
	"github.com/stokwatch/stokwatch/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	connCtx, connCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer connCancel()

	st, err := store.NewPostgresStore(connCtx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	var notifier notify.Notifier
	if cfg.Notifications.FCM.Enabled {
		notifier = notify.NewFCMNotifier(cfg.Notifications.FCM)
		log.Info("fcm notifier enabled", "topic", cfg.Notifications.FCM.Topic)
	} else {
		notifier = notify.NewNoOpNotifier(log)
		log.Warn("fcm disabled, stock alerts will be logged and dropped")
	}

	fetcher := scrape.NewFetcher(cfg.Scrape, log)
	registry := scrape.NewRegistry(fetcher)
	dispatcher := engine.NewDispatcher(st, notifier, log)
	eng := engine.NewEngine(st, registry, dispatcher,
		engine.WithLogger(log),
		engine.WithSoftTimeout(cfg.Schedule.SoftTimeout),
	)

	pool := engine.NewPool(
		eng,
		cfg.Schedule.Workers,
		cfg.Schedule.QueueSize,
		cfg.Schedule.HardTimeout,
		log,
	)
	pool.Start()

	sched, err := engine.NewScheduler(
		st, pool, dispatcher,
		cfg.Schedule.SweepInterval,
		cfg.Schedule.MaintenanceInterval,
		cfg.Retention.MaxAge,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	e := newServer(cfg, st, eng, pool, dispatcher, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "error", err)
	}

	// Let in-progress cron triggers finish, then drain the pool.
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler did not stop in time")
	}
	pool.Stop()

	log.Info("stopped")
	return nil
}

func newServer(
	cfg *config.Config,
	st store.Store,
	eng *engine.Engine,
	pool *engine.Pool,
	dispatcher *engine.Dispatcher,
	log *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	hh := handlers.NewHealthHandler(st)
	e.GET("/healthz", hh.Healthz)
	e.GET("/readyz", hh.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	wh := handlers.NewWishlistHandler(st)
	e.GET("/api/v1/wishlists", wh.List)
	e.GET("/api/v1/wishlists/:id", wh.Get)
	e.GET("/api/v1/wishlists/:id/items", wh.Items)

	nh := handlers.NewNotificationHandler(st)
	e.GET("/api/v1/notifications", nh.List)

	api := humaecho.New(e, huma.DefaultConfig("stokwatch", Version))
	handlers.RegisterTriggerRoutes(
		api,
		handlers.NewCheckHandler(pool),
		handlers.NewItemCheckHandler(eng),
		handlers.NewPurgeHandler(dispatcher, cfg.Retention.MaxAge),
	)

	return e
}
