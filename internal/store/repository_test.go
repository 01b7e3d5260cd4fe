// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type brokenStorage struct{ err error }

func (b brokenStorage) Get(context.Context, string) (string, bool, error) { return "", false, b.err }
func (b brokenStorage) Set(context.Context, string, string) error         { return b.err }
func (b brokenStorage) Remove(context.Context, string) error              { return b.err }
func (b brokenStorage) Close() error                                      { return nil }

func newTestStorages(t *testing.T, kv KeyValueStorage) *Storages {
	t.Helper()
	s, err := NewStorages(kv, logger.Nop())
	require.NoError(t, err)
	return s
}

// ── seed ──────────────────────────────────────────────────────────────────────

func TestLoadSeedCatalog(t *testing.T) {
	seed, err := LoadSeedCatalog()
	require.NoError(t, err)

	require.Len(t, seed.Games, 3)
	require.Len(t, seed.Cheats, 4)

	assert.Equal(t, models.Game{
		ID:          "1",
		Name:        "CS:GO",
		Description: "Counter-Strike: Global Offensive",
		Image:       "https://cdn.cloudflare.steamstatic.com/steam/apps/730/header.jpg",
		Downloads:   1250,
		CreatedAt:   "2024-01-15",
	}, seed.Games[0])
	assert.Equal(t, "GTA V", seed.Games[2].Name)
	assert.Equal(t, 2100, seed.Games[2].Downloads)

	assert.Equal(t, "Money Hack", seed.Cheats[3].Name)
	assert.Equal(t, "3", seed.Cheats[3].GameID)
	assert.Equal(t, "#", seed.Cheats[3].URL)
	assert.Equal(t, []string{"money", "economy"}, seed.Cheats[3].Tags)
}

func TestParseSeedCatalog_Invalid(t *testing.T) {
	_, err := parseSeedCatalog([]byte("games: [unterminated"))
	assert.Error(t, err)
}

func TestParseSeedCatalog_MissingTags(t *testing.T) {
	seed, err := parseSeedCatalog([]byte("cheats:\n  - id: \"1\"\n    name: x\n"))
	require.NoError(t, err)
	require.Len(t, seed.Cheats, 1)
	assert.NotNil(t, seed.Cheats[0].Tags)
	assert.Empty(t, seed.Cheats[0].Tags)
}

// ── fallbacks ─────────────────────────────────────────────────────────────────

func TestRepositories_AbsentKeysReadDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t, NewMemoryStorage())

	assert.Empty(t, s.Users.Users(ctx))
	assert.NotNil(t, s.Users.Users(ctx))
	assert.Nil(t, s.Session.Session(ctx))
	assert.Len(t, s.Games.Games(ctx), 3)
	assert.Len(t, s.Cheats.Cheats(ctx), 4)
	assert.Nil(t, s.Settings.Settings(ctx).HomepageVideoURL)
	assert.Empty(t, s.SecurityLog.Entries(ctx))
}

func TestRepositories_CorruptValuesReadDefaults(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	for _, key := range []string{KeyUsers, KeySession, KeyGames, KeyCheats, KeySettings, KeySecurityLog} {
		require.NoError(t, kv.Set(ctx, key, "{not json"))
	}
	s := newTestStorages(t, kv)

	assert.Empty(t, s.Users.Users(ctx))
	assert.Nil(t, s.Session.Session(ctx))
	assert.Len(t, s.Games.Games(ctx), 3)
	assert.Len(t, s.Cheats.Cheats(ctx), 4)
	assert.Equal(t, models.SiteSettings{}, s.Settings.Settings(ctx))
	assert.Empty(t, s.SecurityLog.Entries(ctx))
}

func TestRepositories_StorageErrorsReadDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t, brokenStorage{err: errors.New("disk on fire")})

	assert.Empty(t, s.Users.Users(ctx))
	assert.Nil(t, s.Session.Session(ctx))
	assert.Len(t, s.Games.Games(ctx), 3)

	err := s.Games.SaveGames(ctx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyGames)
}

func TestGameRepository_SeedIsNotShared(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t, NewMemoryStorage())

	games := s.Games.Games(ctx)
	games[0].Name = "mutated"
	cheats := s.Cheats.Cheats(ctx)
	cheats[0].Tags[0] = "mutated"

	assert.Equal(t, "CS:GO", s.Games.Games(ctx)[0].Name)
	assert.Equal(t, "aimbot", s.Cheats.Cheats(ctx)[0].Tags[0])
}

func TestGameRepository_EmptyListIsKept(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t, NewMemoryStorage())

	require.NoError(t, s.Games.SaveGames(ctx, nil))
	assert.Empty(t, s.Games.Games(ctx))
}

// ── round trips and normalisation ─────────────────────────────────────────────

func TestUserRepository_NormalisesRoles(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	require.NoError(t, kv.Set(ctx, KeyUsers,
		`[{"id":"1","name":"a","email":"a@b.cd","password":"x"},{"id":"2","name":"b","email":"b@b.cd","password":"y","role":"admin"},{"id":"3","role":"root"}]`))
	s := newTestStorages(t, kv)

	users := s.Users.Users(ctx)
	require.Len(t, users, 3)
	assert.Equal(t, models.RoleUser, users[0].Role)
	assert.Equal(t, models.RoleAdmin, users[1].Role)
	assert.Equal(t, models.RoleUser, users[2].Role)
	assert.Equal(t, "x", users[0].PasswordHash)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	s := newTestStorages(t, kv)

	user := models.SessionUser{ID: "u1", Email: "a@b.cd", Name: "Ann", Role: models.RoleAdmin}
	require.NoError(t, s.Session.SaveSession(ctx, user))

	got := s.Session.Session(ctx)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)

	raw, _, _ := kv.Get(ctx, KeySession)
	assert.NotContains(t, raw, "password")

	require.NoError(t, s.Session.ClearSession(ctx))
	assert.Nil(t, s.Session.Session(ctx))
	_, found, _ := kv.Get(ctx, KeySession)
	assert.False(t, found)
}

func TestSessionRepository_RejectsEmptyIdentity(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	require.NoError(t, kv.Set(ctx, KeySession, `{"name":"ghost"}`))
	s := newTestStorages(t, kv)

	assert.Nil(t, s.Session.Session(ctx))
}

func TestCheatRepository_MissingTags(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	require.NoError(t, kv.Set(ctx, KeyCheats, `[{"id":"1","game_id":"1","name":"x"},{"id":"2","tags":null}]`))
	s := newTestStorages(t, kv)

	cheats := s.Cheats.Cheats(ctx)
	require.Len(t, cheats, 2)
	for _, c := range cheats {
		assert.NotNil(t, c.Tags)
		assert.Empty(t, c.Tags)
	}
}

func TestSettingsRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t, NewMemoryStorage())

	url := "https://youtu.be/dQw4w9WgXcQ"
	require.NoError(t, s.Settings.SaveSettings(ctx, models.SiteSettings{HomepageVideoURL: &url}))

	got := s.Settings.Settings(ctx)
	require.NotNil(t, got.HomepageVideoURL)
	assert.Equal(t, url, *got.HomepageVideoURL)
}

func TestSecurityLogRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t, NewMemoryStorage())

	entries := []models.SecurityLogEntry{{
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Event:     models.EventLoginSuccess,
		Details:   map[string]any{"userId": "u1"},
		UserAgent: "test",
		URL:       "tui://login",
	}}
	require.NoError(t, s.SecurityLog.SaveEntries(ctx, entries))

	got := s.SecurityLog.Entries(ctx)
	require.Len(t, got, 1)
	assert.True(t, entries[0].Timestamp.Equal(got[0].Timestamp))
	assert.Equal(t, "u1", got[0].Details["userId"])
	assert.Equal(t, "tui://login", got[0].URL)
}
