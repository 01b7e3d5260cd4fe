// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-cheat-catalog/models"
)

// KeyValueStorage is the profile storage port. Values are opaque strings
// (JSON documents written by the repositories).
type KeyValueStorage interface {
	// Get returns the value under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set creates or replaces the value under key.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}

// ErrorClassificator decides whether a failed storage call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists the registered accounts.
// Reads never fail: an absent or corrupt list reads as empty.
type UserRepository interface {
	Users(ctx context.Context) []models.UserRecord
	SaveUsers(ctx context.Context, users []models.UserRecord) error
}

// SessionRepository persists the single active session of the profile.
type SessionRepository interface {
	// Session returns the stored session, or nil when there is none or it
	// cannot be decoded.
	Session(ctx context.Context) *models.SessionUser
	SaveSession(ctx context.Context, user models.SessionUser) error
	ClearSession(ctx context.Context) error
}

// GameRepository persists the game list. Absent or corrupt data reads as
// the seed catalog.
type GameRepository interface {
	Games(ctx context.Context) []models.Game
	SaveGames(ctx context.Context, games []models.Game) error
}

// CheatRepository persists the cheat list. Absent or corrupt data reads as
// the seed catalog; missing tags read as an empty list.
type CheatRepository interface {
	Cheats(ctx context.Context) []models.Cheat
	SaveCheats(ctx context.Context, cheats []models.Cheat) error
}

// SettingsRepository persists the site settings. Absent or corrupt data
// reads as empty settings.
type SettingsRepository interface {
	Settings(ctx context.Context) models.SiteSettings
	SaveSettings(ctx context.Context, settings models.SiteSettings) error
}

// SecurityLogRepository persists the bounded security event list.
type SecurityLogRepository interface {
	Entries(ctx context.Context) []models.SecurityLogEntry
	SaveEntries(ctx context.Context, entries []models.SecurityLogEntry) error
}
