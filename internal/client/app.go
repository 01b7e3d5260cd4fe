// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cheat-catalog/internal/audit"
	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/handler"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/metrics"
	"github.com/MKhiriev/go-cheat-catalog/internal/server"
	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
	"github.com/MKhiriev/go-cheat-catalog/internal/tui"
	"github.com/MKhiriev/go-cheat-catalog/internal/workers"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

type App struct {
	storages *store.Storages
	services *service.Services
	ui       UI
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp opens the profile and builds the services, the UI and, when
// cfg.Server.HTTPAddress is set, the public API worker.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	kv, err := store.NewKeyValueStorage(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error opening profile: %w", err)
	}

	storages, err := store.NewStorages(kv, log)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	m := metrics.New()
	securityLog := audit.NewLog(storages.SecurityLog, log,
		audit.WithMetrics(m),
		audit.WithDefaultClient(models.ClientInfo{
			UserAgent: "go-cheat-catalog/" + cfg.App.Version,
			URL:       "tui://",
		}),
	)

	services, err := service.NewServices(storages, securityLog, m, *cfg, build, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	var background []workers.Worker
	if cfg.Server.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
		if err != nil {
			storages.Close()
			return nil, fmt.Errorf("error creating handlers: %w", err)
		}

		apiServer, err := server.NewServer(handlers, cfg.Server, log)
		if err != nil {
			storages.Close()
			return nil, fmt.Errorf("error creating server: %w", err)
		}
		background = append(background, apiServer)
	}

	return newApp(storages, services, tui.New(services, log), workers.NewWorkers(log, background...), log), nil
}

func newApp(storages *store.Storages, services *service.Services, ui UI, w *workers.Workers, log *logger.Logger) *App {
	return &App{
		storages: storages,
		services: services,
		ui:       ui,
		workers:  w,
		logger:   log,
	}
}

// Run restores the session, starts the background workers and blocks in the
// UI. Quitting the UI stops the workers and closes the profile.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.storages.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("error closing profile: %w", closeErr))
		}
	}()

	a.services.AuthService.Init(ctx)
	if user := a.services.AuthService.CurrentUser(); user != nil {
		a.logger.Info().Str("user_id", user.ID).Msg("session restored")
	}

	stopWorkers := a.workers.Start(ctx)

	uiErr := a.ui.Run(ctx)
	if errors.Is(uiErr, tui.ErrUserQuit) {
		uiErr = nil
	}

	return errors.Join(uiErr, stopWorkers())
}
