package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/handler"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/server"
	"github.com/MKhiriev/go-flatnav/internal/service"
	"github.com/MKhiriev/go-flatnav/internal/store"
	"github.com/MKhiriev/go-flatnav/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flags := config.BindServerFlags(fs)
	issueToken := fs.String("issue-token", "", "print a write token for the given subject and exit")
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLogger("flatnav-server")
	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	if *issueToken != "" {
		if err = printWriteToken(cfg.App, *issueToken, log); err != nil {
			log.Fatal().Err(err).Msg("error issuing write token")
		}
		return
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printWriteToken(cfg config.ServerApp, subject string, log *logger.Logger) error {
	token, err := service.NewTokenService(cfg, log).IssueToken(context.Background(), subject)
	if err != nil {
		return err
	}

	fmt.Println(token.SignedString)
	return nil
}
