// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cheat-catalog/models"
)

// AuthService owns the session of the profile: Anonymous until Register or
// Login succeeds, Anonymous again after Logout.
type AuthService interface {
	// Init loads the persisted session. Until it returns IsLoading is true.
	Init(ctx context.Context)
	IsLoading() bool
	// CurrentUser returns the session, or nil when anonymous.
	CurrentUser() *models.SessionUser

	Register(ctx context.Context, name, email, password string) (models.SessionUser, error)
	Login(ctx context.Context, email, password string) (models.SessionUser, error)
	// Logout clears the session. It is safe to call when anonymous.
	Logout(ctx context.Context) error
}

// CatalogService is plain CRUD over games, cheats and site settings. It
// performs no authorization; see [AdminService].
type CatalogService interface {
	Games(ctx context.Context) []models.Game
	Game(ctx context.Context, id string) (models.Game, bool)
	AddGame(ctx context.Context, input models.GameInput) (models.Game, error)
	UpdateGame(ctx context.Context, id string, update models.GameUpdate) error
	// DeleteGame removes the game and every cheat referencing it.
	DeleteGame(ctx context.Context, id string) error

	Cheats(ctx context.Context) []models.Cheat
	Cheat(ctx context.Context, id string) (models.Cheat, bool)
	AddCheat(ctx context.Context, input models.CheatInput) (models.Cheat, error)
	UpdateCheat(ctx context.Context, id string, update models.CheatUpdate) error
	DeleteCheat(ctx context.Context, id string) error
	CheatsForGame(ctx context.Context, gameID string) []models.Cheat
	FilterCheats(ctx context.Context, filter models.CheatFilter) []models.Cheat
	// Tags returns the distinct cheat tags in first-seen order.
	Tags(ctx context.Context) []string
	// IncrementDownload adds one to the cheat's counter and reports whether
	// the cheat exists.
	IncrementDownload(ctx context.Context, cheatID string) (bool, error)

	Settings(ctx context.Context) models.SiteSettings
	UpdateSettings(ctx context.Context, update models.SiteSettingsUpdate) error

	ReplaceGames(ctx context.Context, games []models.Game) error
	ReplaceCheats(ctx context.Context, cheats []models.Cheat) error
	ReplaceSettings(ctx context.Context, settings models.SiteSettings) error
}

// AdminService is the privileged catalog surface. Every method checks the
// current session first.
type AdminService interface {
	// RequireAdmin returns the admin session, or logs the attempt and
	// returns ErrAdminAccessDenied.
	RequireAdmin(ctx context.Context, attemptedAccess string) (models.SessionUser, error)

	// SaveGame creates the game when form.ID is empty, updates it otherwise.
	SaveGame(ctx context.Context, form models.GameForm) (models.Game, error)
	DeleteGame(ctx context.Context, id string) error

	// SaveCheat creates the cheat when form.ID is empty, updates it otherwise.
	SaveCheat(ctx context.Context, form models.CheatForm) (models.Cheat, error)
	DeleteCheat(ctx context.Context, id string) error

	SetHomepageVideo(ctx context.Context, url string) error
	SecurityEvents(ctx context.Context) ([]models.SecurityLogEntry, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo(ctx context.Context) models.AppBuildInfo
}

// RateLimiter throttles attempts per key.
type RateLimiter interface {
	Allow(key string, maxRequests int, window time.Duration) bool
}
