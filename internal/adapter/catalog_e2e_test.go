// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-cheat-catalog/internal/audit"
	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/handler"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/metrics"
	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startCatalogAPI serves the real handler stack over a memory profile.
func startCatalogAPI(t *testing.T) (CatalogAPI, *service.Services) {
	t.Helper()

	log := logger.Nop()
	storages, err := store.NewStorages(store.NewMemoryStorage(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	cfg := config.StructuredConfig{
		App: config.App{Version: "1.0.0", PasswordIterations: 10},
		Server: config.Server{
			HTTPAddress:    "127.0.0.1:0",
			RequestTimeout: 5 * time.Second,
			DownloadRate:   1,
			DownloadBurst:  5,
		},
	}

	m := metrics.New()
	services, err := service.NewServices(storages, audit.NewLog(storages.SecurityLog, log), m, cfg, models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc123"), log)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	require.NoError(t, err)

	srv := httptest.NewServer(handlers.HTTP.Init())
	t.Cleanup(srv.Close)

	api, err := NewHTTPCatalogAdapter(srv.URL, 5*time.Second, log)
	require.NoError(t, err)

	return api, services
}

func TestCatalogAPI_EndToEnd(t *testing.T) {
	api, services := startCatalogAPI(t)
	ctx := context.Background()

	version, err := api.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", version.Version)
	assert.Equal(t, "abc123", version.Commit)

	games, err := api.Games(ctx)
	require.NoError(t, err)
	require.Len(t, games, 3)

	details, err := api.Game(ctx, games[0].ID)
	require.NoError(t, err)
	assert.Equal(t, games[0].ID, details.Game.ID)
	assert.Len(t, details.Cheats, 2)

	_, err = api.Game(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	tags, err := api.Tags(ctx)
	require.NoError(t, err)
	assert.Contains(t, tags, "aimbot")

	visual, err := api.Cheats(ctx, models.CheatFilter{Tags: []string{"visual"}})
	require.NoError(t, err)
	assert.Len(t, visual, 2)

	cheat := details.Cheats[0]
	for i := 1; i <= 3; i++ {
		got, err := api.Download(ctx, cheat.ID)
		require.NoError(t, err)
		assert.Equal(t, cheat.Downloads+i, got.Downloads)
		assert.Equal(t, cheat.URL, got.URL)
	}

	stored, ok := services.CatalogService.Cheat(ctx, cheat.ID)
	require.True(t, ok)
	assert.Equal(t, cheat.Downloads+3, stored.Downloads)

	_, err = api.Download(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogAPI_Settings(t *testing.T) {
	api, services := startCatalogAPI(t)
	ctx := context.Background()

	settings, err := api.Settings(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings.HomepageVideoURL)

	video := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	require.NoError(t, services.CatalogService.UpdateSettings(ctx, models.SiteSettingsUpdate{HomepageVideoURL: &video}))

	settings, err = api.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&modestbranding=1", settings.EmbedURL)
}
