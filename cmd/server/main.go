// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cheat-catalog/internal/audit"
	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/handler"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/metrics"
	"github.com/MKhiriev/go-cheat-catalog/internal/server"
	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	log := logger.NewLogger("catalog-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := server.NotifyContext(context.Background())
	defer stop()

	kv, err := store.NewKeyValueStorage(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening storage")
	}

	storages, err := store.NewStorages(kv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	m := metrics.New()
	securityLog := audit.NewLog(storages.SecurityLog, log,
		audit.WithMetrics(m),
		audit.WithDefaultClient(models.ClientInfo{UserAgent: "go-cheat-catalog-server/" + cfg.App.Version}),
	)

	services, err := service.NewServices(storages, securityLog, m, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
