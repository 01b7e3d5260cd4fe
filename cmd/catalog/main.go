// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cheat-catalog/internal/client"
	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/server"
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

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("catalog-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("catalog-client", cfg.Log.ClientFile)

	ctx, stop := server.NotifyContext(context.Background())
	defer stop()

	app, err := client.NewApp(ctx, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
