// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/mock"
	"github.com/MKhiriev/go-cheat-catalog/internal/validators"
	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAdmin = &models.SessionUser{ID: "adm", Email: "gademoff@admin.com", Name: "gademoff", Role: models.RoleAdmin}

type adminMocks struct {
	auth    *mock.MockAuthService
	catalog *mock.MockCatalogService
	log     *mock.MockSecurityLogger
}

func newTestAdminSvc(t *testing.T, ctrl *gomock.Controller) (AdminService, adminMocks) {
	t.Helper()

	m := adminMocks{
		auth:    mock.NewMockAuthService(ctrl),
		catalog: mock.NewMockCatalogService(ctrl),
		log:     mock.NewMockSecurityLogger(ctrl),
	}
	return NewAdminService(m.auth, m.catalog, validators.NewFormValidator(), m.log, logger.Nop()), m
}

func TestAdminService_RequireAdmin_Denied(t *testing.T) {
	tests := []struct {
		name        string
		user        *models.SessionUser
		wantDetails map[string]any
	}{
		{
			name:        "anonymous",
			user:        nil,
			wantDetails: map[string]any{"userId": nil, "userRole": nil, "attemptedAccess": AccessAdminPanel},
		},
		{
			name:        "regular user",
			user:        &models.SessionUser{ID: "u-1", Role: models.RoleUser},
			wantDetails: map[string]any{"userId": "u-1", "userRole": "user", "attemptedAccess": AccessAdminPanel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestAdminSvc(t, ctrl)

			m.auth.EXPECT().CurrentUser().Return(tt.user)
			m.log.EXPECT().Record(gomock.Any(), models.EventUnauthorizedAdminAccess, tt.wantDetails)

			_, err := svc.RequireAdmin(context.Background(), AccessAdminPanel)
			assert.ErrorIs(t, err, ErrAdminAccessDenied)
		})
	}
}

func TestAdminService_RequireAdmin_Allowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)

	m.auth.EXPECT().CurrentUser().Return(testAdmin)

	user, err := svc.RequireAdmin(context.Background(), AccessAdminPanel)
	require.NoError(t, err)
	assert.Equal(t, *testAdmin, user)
}

func TestAdminService_NonAdminCannotMutate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	m.auth.EXPECT().CurrentUser().Return(&models.SessionUser{ID: "u-1", Role: models.RoleUser}).AnyTimes()
	m.log.EXPECT().Record(ctx, models.EventUnauthorizedAdminAccess, gomock.Any()).Times(6)
	// no catalog expectations: nothing may reach the store

	_, err := svc.SaveGame(ctx, models.GameForm{Name: "Portal"})
	assert.ErrorIs(t, err, ErrAdminAccessDenied)
	_, err = svc.SaveCheat(ctx, models.CheatForm{Name: "Aimbot"})
	assert.ErrorIs(t, err, ErrAdminAccessDenied)
	assert.ErrorIs(t, svc.DeleteGame(ctx, "1"), ErrAdminAccessDenied)
	assert.ErrorIs(t, svc.DeleteCheat(ctx, "1"), ErrAdminAccessDenied)
	assert.ErrorIs(t, svc.SetHomepageVideo(ctx, ""), ErrAdminAccessDenied)
	_, err = svc.SecurityEvents(ctx)
	assert.ErrorIs(t, err, ErrAdminAccessDenied)
}

func TestAdminService_SaveGame_CreateSanitizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	want := models.GameInput{
		Name:        "&lt;b&gt;Portal&lt;&#x2F;b&gt;",
		Description: "Tom &amp; Jerry",
		Image:       "https://img/p.png",
	}

	m.auth.EXPECT().CurrentUser().Return(testAdmin)
	gomock.InOrder(
		m.log.EXPECT().Record(ctx, models.EventAdminGameCreate, map[string]any{"adminId": "adm", "gameName": want.Name}),
		m.catalog.EXPECT().AddGame(ctx, want).Return(models.Game{ID: "g-1", Name: want.Name}, nil),
	)

	game, err := svc.SaveGame(ctx, models.GameForm{
		Name:        "  <b>Portal</b> ",
		Description: "Tom & Jerry\n",
		Image:       " https://img/p.png ",
	})
	require.NoError(t, err)
	assert.Equal(t, "g-1", game.ID)
}

func TestAdminService_SaveGame_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	m.auth.EXPECT().CurrentUser().Return(testAdmin)
	m.catalog.EXPECT().Game(ctx, "g-1").Return(models.Game{ID: "g-1", Name: "Old"}, true)
	m.log.EXPECT().Record(ctx, models.EventAdminGameUpdate, map[string]any{"adminId": "adm", "gameId": "g-1", "gameName": "New"})
	m.catalog.EXPECT().UpdateGame(ctx, "g-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u models.GameUpdate) error {
			require.NotNil(t, u.Name)
			assert.Equal(t, "New", *u.Name)
			assert.Nil(t, u.Downloads)
			return nil
		},
	)
	m.catalog.EXPECT().Game(ctx, "g-1").Return(models.Game{ID: "g-1", Name: "New"}, true)

	game, err := svc.SaveGame(ctx, models.GameForm{ID: "g-1", Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", game.Name)
}

func TestAdminService_SaveGame_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)

	m.auth.EXPECT().CurrentUser().Return(testAdmin)
	m.catalog.EXPECT().Game(gomock.Any(), "404").Return(models.Game{}, false)

	_, err := svc.SaveGame(context.Background(), models.GameForm{ID: "404", Name: "Portal"})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestAdminService_SaveGame_ShortNameAfterTrim(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)

	m.auth.EXPECT().CurrentUser().Return(testAdmin)

	_, err := svc.SaveGame(context.Background(), models.GameForm{Name: "  P  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, validators.ErrGameNameTooShort)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, FieldForm, verr.Field)
	assert.Equal(t, validators.ErrGameNameTooShort.Error(), verr.Message)
}

func TestAdminService_SaveCheat_CleansTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	m.auth.EXPECT().CurrentUser().Return(testAdmin)
	m.log.EXPECT().Record(ctx, models.EventAdminCheatCreate, map[string]any{
		"adminId":   "adm",
		"cheatName": "Aimbot",
		"gameId":    "1",
	})
	m.catalog.EXPECT().AddCheat(ctx, models.CheatInput{
		GameID: "1",
		Name:   "Aimbot",
		URL:    "https://example.com/a.zip",
		Tags:   []string{"aim", "&lt;x&gt;"},
	}).Return(models.Cheat{ID: "c-1"}, nil)

	_, err := svc.SaveCheat(ctx, models.CheatForm{
		GameID: "1",
		Name:   "Aimbot",
		URL:    " https://example.com/a.zip ",
		Tags:   []string{" aim ", "", "   ", "aim", "<x>"},
	})
	require.NoError(t, err)
}

func TestAdminService_SaveCheat_Rejections(t *testing.T) {
	eleven := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10", "t11"}

	tests := []struct {
		name string
		form models.CheatForm
		want error
	}{
		{"ftp url", models.CheatForm{Name: "Aimbot", URL: "ftp://example.com/x"}, validators.ErrInvalidURL},
		{"eleven tags", models.CheatForm{Name: "Aimbot", Tags: eleven}, validators.ErrTooManyTags},
		{"short name", models.CheatForm{Name: "A"}, validators.ErrCheatNameTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestAdminSvc(t, ctrl)

			m.auth.EXPECT().CurrentUser().Return(testAdmin)

			_, err := svc.SaveCheat(context.Background(), tt.form)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAdminService_SaveCheat_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	m.auth.EXPECT().CurrentUser().Return(testAdmin)
	m.catalog.EXPECT().Cheat(ctx, "c-1").Return(models.Cheat{ID: "c-1"}, true)
	m.log.EXPECT().Record(ctx, models.EventAdminCheatUpdate, map[string]any{
		"adminId":   "adm",
		"cheatId":   "c-1",
		"cheatName": "Wallhack",
		"gameId":    "2",
	})
	m.catalog.EXPECT().UpdateCheat(ctx, "c-1", gomock.Any()).Return(nil)
	m.catalog.EXPECT().Cheat(ctx, "c-1").Return(models.Cheat{ID: "c-1", Name: "Wallhack"}, true)

	cheat, err := svc.SaveCheat(ctx, models.CheatForm{ID: "c-1", GameID: "2", Name: "Wallhack"})
	require.NoError(t, err)
	assert.Equal(t, "Wallhack", cheat.Name)
}

func TestAdminService_Deletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	m.auth.EXPECT().CurrentUser().Return(testAdmin).Times(2)
	m.log.EXPECT().Record(ctx, models.EventAdminGameDelete, map[string]any{"adminId": "adm", "gameId": "1"})
	m.catalog.EXPECT().DeleteGame(ctx, "1").Return(nil)
	m.log.EXPECT().Record(ctx, models.EventAdminCheatDelete, map[string]any{"adminId": "adm", "cheatId": "2"})
	m.catalog.EXPECT().DeleteCheat(ctx, "2").Return(nil)

	require.NoError(t, svc.DeleteGame(ctx, "1"))
	require.NoError(t, svc.DeleteCheat(ctx, "2"))
}

func TestAdminService_SetHomepageVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	m.auth.EXPECT().CurrentUser().Return(testAdmin).Times(3)

	// invalid link never reaches the store
	err := svc.SetHomepageVideo(ctx, "https://vimeo.com/123")
	assert.ErrorIs(t, err, validators.ErrInvalidVideoURL)

	m.log.EXPECT().Record(ctx, models.EventAdminSettingsUpdate, gomock.Any()).Times(2)
	m.catalog.EXPECT().UpdateSettings(ctx, models.SiteSettingsUpdate{HomepageVideoURL: ptr("https://youtu.be/dQw4w9WgXcQ")}).Return(nil)
	m.catalog.EXPECT().UpdateSettings(ctx, models.SiteSettingsUpdate{HomepageVideoURL: ptr("")}).Return(nil)

	require.NoError(t, svc.SetHomepageVideo(ctx, " https://youtu.be/dQw4w9WgXcQ "))
	require.NoError(t, svc.SetHomepageVideo(ctx, "  "))
}

func TestAdminService_SecurityEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.SecurityLogEntry{{Event: models.EventLoginSuccess}}
	m.auth.EXPECT().CurrentUser().Return(testAdmin)
	m.log.EXPECT().Entries(ctx).Return(entries)

	got, err := svc.SecurityEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestAdminFlow_BootstrapAdminManagesCatalog(t *testing.T) {
	svcs, storages := newMemoryServices(t)
	ctx := context.Background()

	_, err := svcs.AuthService.Register(ctx, "gademoff", "gademoff@admin.com", "Admin1234")
	require.NoError(t, err)

	game, err := svcs.AdminService.SaveGame(ctx, models.GameForm{Name: "Portal 2"})
	require.NoError(t, err)

	_, err = svcs.AdminService.SaveCheat(ctx, models.CheatForm{GameID: game.ID, Name: "Noclip", Tags: []string{"movement"}})
	require.NoError(t, err)
	require.Len(t, svcs.CatalogService.CheatsForGame(ctx, game.ID), 1)

	require.NoError(t, svcs.AdminService.DeleteGame(ctx, game.ID))
	assert.Empty(t, svcs.CatalogService.CheatsForGame(ctx, game.ID))

	events, err := svcs.AdminService.SecurityEvents(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, models.EventAdminGameDelete, events[len(events)-1].Event)
	assert.Len(t, storages.SecurityLog.Entries(ctx), len(events))

	// a second registration with the seeded identity is an ordinary user
	require.NoError(t, svcs.AuthService.Logout(ctx))
	_, err = svcs.AuthService.Register(ctx, "gademoff", "GADEMOFF@admin.com", "Admin1234")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}
