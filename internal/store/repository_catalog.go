// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

type gameRepository struct {
	doc  jsonDocument[[]models.Game]
	seed SeedCatalog
}

// NewGameRepository returns a [GameRepository] stored under [KeyGames],
// falling back to seed.
func NewGameRepository(kv KeyValueStorage, seed SeedCatalog, log *logger.Logger) GameRepository {
	return &gameRepository{
		doc:  jsonDocument[[]models.Game]{kv: kv, key: KeyGames, logger: log},
		seed: seed,
	}
}

func (r *gameRepository) Games(ctx context.Context) []models.Game {
	games, ok := r.doc.read(ctx)
	if !ok || games == nil {
		return r.seed.games()
	}
	return games
}

func (r *gameRepository) SaveGames(ctx context.Context, games []models.Game) error {
	if games == nil {
		games = []models.Game{}
	}
	return r.doc.write(ctx, games)
}

type cheatRepository struct {
	doc  jsonDocument[[]models.Cheat]
	seed SeedCatalog
}

// NewCheatRepository returns a [CheatRepository] stored under [KeyCheats],
// falling back to seed.
func NewCheatRepository(kv KeyValueStorage, seed SeedCatalog, log *logger.Logger) CheatRepository {
	return &cheatRepository{
		doc:  jsonDocument[[]models.Cheat]{kv: kv, key: KeyCheats, logger: log},
		seed: seed,
	}
}

func (r *cheatRepository) Cheats(ctx context.Context) []models.Cheat {
	cheats, ok := r.doc.read(ctx)
	if !ok || cheats == nil {
		return r.seed.cheats()
	}

	for i := range cheats {
		if cheats[i].Tags == nil {
			cheats[i].Tags = []string{}
		}
	}
	return cheats
}

func (r *cheatRepository) SaveCheats(ctx context.Context, cheats []models.Cheat) error {
	if cheats == nil {
		cheats = []models.Cheat{}
	}
	return r.doc.write(ctx, cheats)
}

type settingsRepository struct {
	doc jsonDocument[models.SiteSettings]
}

// NewSettingsRepository returns a [SettingsRepository] stored under
// [KeySettings].
func NewSettingsRepository(kv KeyValueStorage, log *logger.Logger) SettingsRepository {
	return &settingsRepository{doc: jsonDocument[models.SiteSettings]{kv: kv, key: KeySettings, logger: log}}
}

func (r *settingsRepository) Settings(ctx context.Context) models.SiteSettings {
	settings, _ := r.doc.read(ctx)
	return settings
}

func (r *settingsRepository) SaveSettings(ctx context.Context, settings models.SiteSettings) error {
	return r.doc.write(ctx, settings)
}
