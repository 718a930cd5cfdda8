package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/MKhiriev/cipher-chat/internal/adapter"
	"github.com/MKhiriev/cipher-chat/internal/client"
	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	args := os.Args[1:]
	verbose := slices.Contains(args, "--verbose")
	args = slices.DeleteFunc(args, func(arg string) bool { return arg == "--verbose" })

	log := logger.NewClientLogger("cipher-chat", os.Stderr, verbose)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app := client.NewApp(*cfg, adapter.NewHTTPServerAdapter, log, client.WithVersion(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, client.RenderError(err))
		stop()
		os.Exit(1)
	}
}
