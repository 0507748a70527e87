package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"store/cmd"
	httpadapter "store/internal/adapters/in/http"
	"store/internal/adapters/out/kafka"
	"store/internal/adapters/out/postgres"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	config, err := cmd.LoadConfig()
	panicIfErr("failed to load config", err)

	logger := newLogger(config.Env)

	gormDB, err := gorm.Open(gormpg.Open(config.DB.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	panicIfErr("failed to connect to db", err)
	panicIfErr("failed to migrate db", postgres.Migrate(gormDB))

	sqlxDB, err := sqlx.Connect("postgres", config.DB.DSN())
	panicIfErr("failed to connect read side", err)
	defer sqlxDB.Close()
	logger.Info("postgres connected")

	app := cmd.NewCompositionRoot(config, gormDB, sqlxDB, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close resources", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpadapter.RegisterMetrics(registry)
	kafka.RegisterMetrics(registry)

	jobManager := app.CreateJobManager()
	panicIfErr("failed to start jobs", jobManager.StartAll())
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	startWebServer(ctx, app, registry, config, logger)
}

func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	registry *prometheus.Registry,
	config cmd.Config,
	logger *slog.Logger,
) {
	e := echo.New()
	e.HideBanner = true
	if config.Env == "production" {
		e.Logger.SetLevel(log.WARN)
	} else {
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())
	e.Use(httpadapter.Metrics())
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTP.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", "error", err)
	}
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
