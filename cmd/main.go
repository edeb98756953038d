package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	_ "condition_monitor/docs"
	"condition_monitor/internal/config"
	"condition_monitor/internal/handlers"
	"condition_monitor/internal/logger"
	"condition_monitor/internal/repository"
	"condition_monitor/internal/repository/db"
	"condition_monitor/internal/server"
	"condition_monitor/internal/service"
)

const configDir = "configs"

// @title                       Condition Monitor API
// @version                     1.0
// @description                 Condition reports of sensing devices: hourly graphs, filtered history and category trends.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// bootstrap logger until the configured one is available
	log := logger.New(logger.InfoLevel, logger.ConsoleEncoding)

	cfg, err := config.Load(configDir)
	if err != nil {
		log.Fatalw("error reading config", "err", err)
	}
	log = logger.New(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, cfg)
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithWSIntervals(cfg.WS.DefaultInterval, cfg.WS.MaxInterval))

	log.Infow("starting",
		"port", cfg.Server.Port,
		"utc_offset", cfg.Reporting.UTCOffset,
		"trend_shape", cfg.Trend.Shape,
		"drop_probability", cfg.Ingest.DropProbability,
	)

	srv := &server.Server{}
	runHTTPServer(srv, cfg, apiHandler, log)

	waitForShutdown(srv, cfg, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	dbPath := cfg.DB.Path
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, cfg *config.Config, handler *handlers.Handler, log *logger.Logger) {
	opts := server.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	go func() {
		if err := srv.Run(cfg.Server.Port, handler.InitRoutes(), opts); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
