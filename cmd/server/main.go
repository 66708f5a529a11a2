package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mkhalinin/go-library-manager/internal/config"
	myHTTP "github.com/mkhalinin/go-library-manager/internal/handler/http"
	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/internal/server"
	"github.com/mkhalinin/go-library-manager/internal/service"
	"github.com/mkhalinin/go-library-manager/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Log.Path)
	defer log.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)
	services := service.NewServices(repos, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
