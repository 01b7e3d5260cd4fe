// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/metrics"
	"github.com/MKhiriev/go-cheat-catalog/internal/mock"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func newMemoryCatalog(t *testing.T, m *metrics.Metrics) (*catalogService, *store.Storages) {
	t.Helper()

	storages, err := store.NewStorages(store.NewMemoryStorage(), logger.Nop())
	require.NoError(t, err)

	svc := NewCatalogService(storages, &fixedIDs{ids: []string{"new-1", "new-2", "new-3"}}, m, logger.Nop()).(*catalogService)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 23, 30, 0, 0, time.FixedZone("UTC+3", 3*3600)) }
	return svc, storages
}

func TestCatalog_SeedIsServedWhenEmpty(t *testing.T) {
	svc, _ := newMemoryCatalog(t, nil)
	ctx := context.Background()

	assert.Len(t, svc.Games(ctx), 3)
	assert.Len(t, svc.Cheats(ctx), 4)
	assert.Equal(t, models.SiteSettings{}, svc.Settings(ctx))
}

func TestCatalog_AddGame(t *testing.T) {
	svc, _ := newMemoryCatalog(t, nil)
	ctx := context.Background()

	game, err := svc.AddGame(ctx, models.GameInput{Name: "Portal", Description: "Puzzle", Image: "https://img/p.png"})
	require.NoError(t, err)

	assert.Equal(t, models.Game{
		ID:          "new-1",
		Name:        "Portal",
		Description: "Puzzle",
		Image:       "https://img/p.png",
		Downloads:   0,
		CreatedAt:   "2026-03-14",
	}, game)

	got, ok := svc.Game(ctx, "new-1")
	require.True(t, ok)
	assert.Equal(t, game, got)
	assert.Len(t, svc.Games(ctx), 4)
}

func TestCatalog_AddCheat_DefaultsTagsAndAllowsUnknownGame(t *testing.T) {
	svc, _ := newMemoryCatalog(t, nil)
	ctx := context.Background()

	cheat, err := svc.AddCheat(ctx, models.CheatInput{GameID: "no-such-game", Name: "Orphan"})
	require.NoError(t, err)

	assert.Equal(t, []string{}, cheat.Tags)
	assert.Equal(t, "no-such-game", cheat.GameID)
	assert.Equal(t, 0, cheat.Downloads)

	stored, ok := svc.Cheat(ctx, cheat.ID)
	require.True(t, ok)
	assert.Equal(t, cheat, stored)
}

func TestCatalog_UpdateGame(t *testing.T) {
	svc, _ := newMemoryCatalog(t, nil)
	ctx := context.Background()

	before, ok := svc.Game(ctx, "1")
	require.True(t, ok)

	require.NoError(t, svc.UpdateGame(ctx, "1", models.GameUpdate{Name: ptr("Renamed"), Downloads: ptr(7)}))

	after, ok := svc.Game(ctx, "1")
	require.True(t, ok)
	assert.Equal(t, "Renamed", after.Name)
	assert.Equal(t, 7, after.Downloads)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestCatalog_UpdateRejectsNegativeDownloads(t *testing.T) {
	svc, _ := newMemoryCatalog(t, nil)
	ctx := context.Background()

	err := svc.UpdateGame(ctx, "1", models.GameUpdate{Downloads: ptr(-1)})
	assert.ErrorIs(t, err, ErrNegativeDownloads)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.UpdateCheat(ctx, "1", models.CheatUpdate{Downloads: ptr(-5)})
	assert.ErrorIs(t, err, ErrNegativeDownloads)
}

func TestCatalog_MissingIDIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	games := mock.NewMockGameRepository(ctrl)
	cheats := mock.NewMockCheatRepository(ctrl)
	storages := &store.Storages{Games: games, Cheats: cheats}
	svc := NewCatalogService(storages, &fixedIDs{ids: []string{"x"}}, nil, logger.Nop())
	ctx := context.Background()

	// no Save* expectations: any write fails the test
	games.EXPECT().Games(ctx).Return([]models.Game{{ID: "1"}}).AnyTimes()
	cheats.EXPECT().Cheats(ctx).Return([]models.Cheat{{ID: "1", GameID: "1"}}).AnyTimes()

	require.NoError(t, svc.UpdateGame(ctx, "404", models.GameUpdate{Name: ptr("x")}))
	require.NoError(t, svc.UpdateCheat(ctx, "404", models.CheatUpdate{Name: ptr("x")}))
	require.NoError(t, svc.DeleteCheat(ctx, "404"))
	require.NoError(t, svc.DeleteGame(ctx, "404"))

	found, err := svc.IncrementDownload(ctx, "404")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCatalog_DeleteGameCascades(t *testing.T) {
	svc, _ := newMemoryCatalog(t, nil)
	ctx := context.Background()

	// an unrelated cheat must survive
	other, err := svc.AddCheat(ctx, models.CheatInput{GameID: "2", Name: "Other"})
	require.NoError(t, err)

	require.NotEmpty(t, svc.CheatsForGame(ctx, "1"))
	require.NoError(t, svc.DeleteGame(ctx, "1"))

	_, ok := svc.Game(ctx, "1")
	assert.False(t, ok)
	assert.Empty(t, svc.CheatsForGame(ctx, "1"))

	_, ok = svc.Cheat(ctx, other.ID)
	assert.True(t, ok)
	for _, c := range svc.Cheats(ctx) {
		assert.NotEqual(t, "1", c.GameID)
	}
}

func TestCatalog_DeleteGame_CheatSaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	games := mock.NewMockGameRepository(ctrl)
	cheats := mock.NewMockCheatRepository(ctrl)
	svc := NewCatalogService(&store.Storages{Games: games, Cheats: cheats}, &fixedIDs{ids: []string{"x"}}, nil, logger.Nop())
	ctx := context.Background()

	games.EXPECT().Games(ctx).Return([]models.Game{{ID: "1"}})
	games.EXPECT().SaveGames(ctx, []models.Game{}).Return(nil)
	cheats.EXPECT().Cheats(ctx).Return([]models.Cheat{{ID: "c", GameID: "1"}})
	cheats.EXPECT().SaveCheats(ctx, []models.Cheat{}).Return(errors.New("quota exceeded"))

	err := svc.DeleteGame(ctx, "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error saving cheats")
}

func TestCatalog_IncrementDownload(t *testing.T) {
	m := metrics.New()
	svc, _ := newMemoryCatalog(t, m)
	ctx := context.Background()

	before, ok := svc.Cheat(ctx, "1")
	require.True(t, ok)
	untouched, _ := svc.Cheat(ctx, "2")

	for i := 0; i < 3; i++ {
		found, err := svc.IncrementDownload(ctx, "1")
		require.NoError(t, err)
		require.True(t, found)
	}

	after, _ := svc.Cheat(ctx, "1")
	assert.Equal(t, before.Downloads+3, after.Downloads)

	other, _ := svc.Cheat(ctx, "2")
	assert.Equal(t, untouched, other)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "catalog_downloads_total 3")
}

func TestCatalog_IncrementDownloadProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		storages, err := store.NewStorages(store.NewMemoryStorage(), logger.Nop())
		if err != nil {
			rt.Fatal(err)
		}
		svc := NewCatalogService(storages, &fixedIDs{ids: []string{"x"}}, nil, logger.Nop())
		ctx := context.Background()

		ids := []string{"1", "2", "3", "4", "missing"}
		calls := rapid.SliceOf(rapid.SampledFrom(ids)).Draw(rt, "calls")

		before := make(map[string]int)
		for _, c := range svc.Cheats(ctx) {
			before[c.ID] = c.Downloads
		}

		want := make(map[string]int)
		for _, id := range calls {
			if _, err = svc.IncrementDownload(ctx, id); err != nil {
				rt.Fatal(err)
			}
			want[id]++
		}

		after := svc.Cheats(ctx)
		if len(after) != len(before) {
			rt.Fatalf("cheat count changed: %d -> %d", len(before), len(after))
		}
		for _, c := range after {
			if c.Downloads != before[c.ID]+want[c.ID] {
				rt.Fatalf("cheat %s: got %d downloads, want %d", c.ID, c.Downloads, before[c.ID]+want[c.ID])
			}
		}
	})
}

func TestCatalog_FilterCheats(t *testing.T) {
	svc, _ := newMemoryCatalog(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.ReplaceCheats(ctx, []models.Cheat{
		{ID: "a", GameID: "g1", Name: "Aimbot Pro", Tags: []string{"aim", "esp"}},
		{ID: "b", GameID: "g1", Name: "Wallhack", Tags: []string{"esp"}},
		{ID: "c", GameID: "g2", Name: "Speed AIM", Tags: []string{"speed"}},
		{ID: "d", GameID: "g2", Name: "Nothing", Tags: []string{}},
	}))

	ids := func(cheats []models.Cheat) []string {
		out := make([]string, 0, len(cheats))
		for _, c := range cheats {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(svc.FilterCheats(ctx, models.CheatFilter{})))
	assert.Equal(t, []string{"a", "b"}, ids(svc.CheatsForGame(ctx, "g1")))
	assert.Equal(t, []string{"a", "b", "c"}, ids(svc.FilterCheats(ctx, models.CheatFilter{Tags: []string{"esp", "speed"}})))
	assert.Equal(t, []string{"a", "c"}, ids(svc.FilterCheats(ctx, models.CheatFilter{Query: "  aim "})))
	assert.Equal(t, []string{"c"}, ids(svc.FilterCheats(ctx, models.CheatFilter{GameID: "g2", Query: "aim"})))
	assert.Empty(t, svc.FilterCheats(ctx, models.CheatFilter{GameID: "g3"}))

	assert.Equal(t, []string{"aim", "esp", "speed"}, svc.Tags(ctx))
}

func TestCatalog_UpdateSettingsMerges(t *testing.T) {
	svc, _ := newMemoryCatalog(t, nil)
	ctx := context.Background()

	video := "https://youtu.be/dQw4w9WgXcQ"
	require.NoError(t, svc.UpdateSettings(ctx, models.SiteSettingsUpdate{HomepageVideoURL: &video}))

	// an empty update keeps the existing value
	require.NoError(t, svc.UpdateSettings(ctx, models.SiteSettingsUpdate{}))

	got := svc.Settings(ctx)
	require.NotNil(t, got.HomepageVideoURL)
	assert.Equal(t, video, *got.HomepageVideoURL)

	require.NoError(t, svc.ReplaceSettings(ctx, models.SiteSettings{}))
	assert.Nil(t, svc.Settings(ctx).HomepageVideoURL)
}

func TestCatalog_ReplaceGames(t *testing.T) {
	svc, _ := newMemoryCatalog(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.ReplaceGames(ctx, []models.Game{{ID: "only", Name: "Only"}}))
	assert.Equal(t, []models.Game{{ID: "only", Name: "Only"}}, svc.Games(ctx))
}

func TestCatalog_SaveErrorsAreWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsRepository(ctrl)
	svc := NewCatalogService(&store.Storages{Settings: settings}, &fixedIDs{ids: []string{"x"}}, nil, logger.Nop())
	ctx := context.Background()

	boom := errors.New("boom")
	settings.EXPECT().Settings(ctx).Return(models.SiteSettings{})
	settings.EXPECT().SaveSettings(ctx, gomock.Any()).Return(boom)

	err := svc.UpdateSettings(ctx, models.SiteSettingsUpdate{HomepageVideoURL: ptr("")})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "error saving settings")
}
