// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package main

import (
	"context"
	"fmt"

	"github.com/thsrealty/backoffice/internal/config"
	"github.com/thsrealty/backoffice/internal/handler"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/ratelimit"
	"github.com/thsrealty/backoffice/internal/server"
	"github.com/thsrealty/backoffice/internal/service"
	"github.com/thsrealty/backoffice/internal/store"
	"github.com/thsrealty/backoffice/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("backoffice-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	objects, err := store.NewObjectStorage(cfg.Storage.S3, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to object storage")
	}
	if err = objects.EnsureBucket(ctx); err != nil {
		log.Fatal().Err(err).Msg("error preparing image bucket")
	}

	storages := store.NewStorages(db, objects, log)
	services := service.NewServices(storages, cfg, log)

	loginLimiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), cfg.RateLimit.LoginMax, cfg.RateLimit.LoginWindow)
	submissionLimiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), cfg.RateLimit.SubmissionMax, cfg.RateLimit.SubmissionWindow)

	handlers, err := handler.NewHandlers(services, cfg, loginLimiter, submissionLimiter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	workers.NewWorkers(cfg.Workers, loginLimiter, submissionLimiter, log).Run()

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
