package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-lost-found/internal/adapter"
	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/handler"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/server"
	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/internal/workers"
	"golang.org/x/sync/errgroup"
)

const role = "lost-found-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(role, logger.WithLevel(logger.LevelForEnv(cfg.App.IsProduction())))
	log.Debug().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Msg("received configs")

	if err = run(*cfg, log); err != nil {
		log.Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(cfg config.StructuredConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	sender, err := adapter.NewNotificationSender(cfg.Notifier, log)
	if err != nil {
		return fmt.Errorf("error creating notification sender: %w", err)
	}

	services := service.NewServices(storages, sender, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	bgWorkers := workers.NewWorkers(storages, cfg.Workers, log)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bgWorkers.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		return srv.RunServer(gCtx)
	})

	return g.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
