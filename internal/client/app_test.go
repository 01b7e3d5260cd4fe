// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/mock"
	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
	"github.com/MKhiriev/go-cheat-catalog/internal/tui"
	"github.com/MKhiriev/go-cheat-catalog/internal/workers"
	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

type fakeWorker struct {
	stopped bool
}

func (f *fakeWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	f.stopped = true
	return nil
}

func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()
	storages, err := store.NewStorages(store.NewMemoryStorage(), logger.Nop())
	require.NoError(t, err)
	return storages
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "quit by user", uiErr: tui.ErrUserQuit},
		{name: "clean exit"},
		{name: "ui failure", uiErr: errors.New("no tty"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mock.NewMockAuthService(ctrl)
			auth.EXPECT().Init(gomock.Any())
			auth.EXPECT().CurrentUser().Return(&models.SessionUser{ID: "u-1"})

			ui := &fakeUI{err: tt.uiErr}
			worker := &fakeWorker{}
			app := newApp(newTestStorages(t), &service.Services{AuthService: auth}, ui, workers.NewWorkers(logger.Nop(), worker), logger.Nop())

			err := app.Run(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, ui.calls)
			assert.True(t, worker.stopped)
		})
	}
}

func TestNewApp_MemoryProfile(t *testing.T) {
	cfg := &config.StructuredConfig{
		App: config.App{
			Version:            "1.0.0",
			SeedAdminName:      "gademoff",
			SeedAdminEmail:     "gademoff@admin.com",
			PasswordIterations: 10,
		},
		Storage: config.Storage{DB: config.DB{DSN: "memory"}},
		Security: config.Security{
			LoginMaxAttempts:    5,
			LoginWindow:         5 * time.Minute,
			RegisterMaxAttempts: 3,
			RegisterWindow:      10 * time.Minute,
		},
	}

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, app.services.CatalogService)
	assert.Len(t, app.services.CatalogService.Games(context.Background()), 3)
	require.NoError(t, app.storages.Close())
}

func TestNewApp_WithAPIServer(t *testing.T) {
	cfg := &config.StructuredConfig{
		App:     config.App{Version: "1.0.0", PasswordIterations: 10},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "profile.db")}},
		Server:  config.Server{HTTPAddress: "127.0.0.1:0", DownloadRate: 1, DownloadBurst: 5},
	}

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.storages.Close())
}

func TestNewApp_MissingVersion(t *testing.T) {
	cfg := &config.StructuredConfig{Storage: config.Storage{DB: config.DB{DSN: "memory"}}}

	_, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}
