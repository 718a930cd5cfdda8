package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/handler"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/metrics"
	"github.com/MKhiriev/cipher-chat/internal/server"
	"github.com/MKhiriev/cipher-chat/internal/service"
	"github.com/MKhiriev/cipher-chat/internal/store"
	"github.com/MKhiriev/cipher-chat/internal/workers"
	"github.com/MKhiriev/cipher-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range info.Lines() {
		fmt.Println(line)
	}

	log := logger.NewLogger("cipher-chat-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = info.Version
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	m := metrics.New()
	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(
		workers.NewCaptchaSweeper(services.CaptchaService, cfg.Captcha, log),
	).Run(ctx)

	srv.RunServer()
}
