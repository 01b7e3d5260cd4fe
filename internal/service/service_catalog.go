// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/metrics"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
	"github.com/MKhiriev/go-cheat-catalog/internal/utils"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

type catalogService struct {
	games    store.GameRepository
	cheats   store.CheatRepository
	settings store.SettingsRepository

	ids     utils.IDGenerator
	metrics *metrics.Metrics
	now     func() time.Time

	// serialises read-modify-write cycles across all three tables
	mu sync.Mutex

	logger *logger.Logger
}

func NewCatalogService(storages *store.Storages, ids utils.IDGenerator, m *metrics.Metrics, log *logger.Logger) CatalogService {
	return &catalogService{
		games:    storages.Games,
		cheats:   storages.Cheats,
		settings: storages.Settings,
		ids:      ids,
		metrics:  m,
		now:      time.Now,
		logger:   log,
	}
}

func (c *catalogService) today() string {
	return c.now().UTC().Format(models.DateLayout)
}

func (c *catalogService) Games(ctx context.Context) []models.Game {
	return c.games.Games(ctx)
}

func (c *catalogService) Game(ctx context.Context, id string) (models.Game, bool) {
	games := c.games.Games(ctx)
	idx := slices.IndexFunc(games, func(g models.Game) bool { return g.ID == id })
	if idx < 0 {
		return models.Game{}, false
	}
	return games[idx], true
}

func (c *catalogService) AddGame(ctx context.Context, input models.GameInput) (models.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game := models.Game{
		ID:          c.ids.Generate(),
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   c.today(),
	}

	if err := c.games.SaveGames(ctx, append(c.games.Games(ctx), game)); err != nil {
		c.logger.Err(err).Str("func", "*catalogService.AddGame").Msg("error saving games")
		return models.Game{}, storageError("games", err)
	}

	return game, nil
}

func (c *catalogService) UpdateGame(ctx context.Context, id string, update models.GameUpdate) error {
	if update.Downloads != nil && *update.Downloads < 0 {
		return ErrNegativeDownloads
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	games := c.games.Games(ctx)
	idx := slices.IndexFunc(games, func(g models.Game) bool { return g.ID == id })
	if idx < 0 {
		return nil
	}

	game := &games[idx]
	if update.Name != nil {
		game.Name = *update.Name
	}
	if update.Description != nil {
		game.Description = *update.Description
	}
	if update.Image != nil {
		game.Image = *update.Image
	}
	if update.Downloads != nil {
		game.Downloads = *update.Downloads
	}

	if err := c.games.SaveGames(ctx, games); err != nil {
		return storageError("games", err)
	}
	return nil
}

func (c *catalogService) DeleteGame(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	games := c.games.Games(ctx)
	remaining := slices.DeleteFunc(slices.Clone(games), func(g models.Game) bool { return g.ID == id })
	if len(remaining) != len(games) {
		if err := c.games.SaveGames(ctx, remaining); err != nil {
			return storageError("games", err)
		}
	}

	cheats := c.cheats.Cheats(ctx)
	orphans := slices.DeleteFunc(slices.Clone(cheats), func(ch models.Cheat) bool { return ch.GameID == id })
	if len(orphans) != len(cheats) {
		if err := c.cheats.SaveCheats(ctx, orphans); err != nil {
			return storageError("cheats", err)
		}
		c.logger.Debug().Str("game_id", id).Int("cheats", len(cheats)-len(orphans)).Msg("cascade deleted cheats")
	}

	return nil
}

func (c *catalogService) Cheats(ctx context.Context) []models.Cheat {
	return c.cheats.Cheats(ctx)
}

func (c *catalogService) Cheat(ctx context.Context, id string) (models.Cheat, bool) {
	cheats := c.cheats.Cheats(ctx)
	idx := slices.IndexFunc(cheats, func(ch models.Cheat) bool { return ch.ID == id })
	if idx < 0 {
		return models.Cheat{}, false
	}
	return cheats[idx], true
}

func (c *catalogService) AddCheat(ctx context.Context, input models.CheatInput) (models.Cheat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	cheat := models.Cheat{
		ID:          c.ids.Generate(),
		GameID:      input.GameID,
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		Image:       input.Image,
		CreatedAt:   c.today(),
		Tags:        slices.Clone(tags),
	}

	if err := c.cheats.SaveCheats(ctx, append(c.cheats.Cheats(ctx), cheat)); err != nil {
		c.logger.Err(err).Str("func", "*catalogService.AddCheat").Msg("error saving cheats")
		return models.Cheat{}, storageError("cheats", err)
	}

	return cheat, nil
}

func (c *catalogService) UpdateCheat(ctx context.Context, id string, update models.CheatUpdate) error {
	if update.Downloads != nil && *update.Downloads < 0 {
		return ErrNegativeDownloads
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cheats := c.cheats.Cheats(ctx)
	idx := slices.IndexFunc(cheats, func(ch models.Cheat) bool { return ch.ID == id })
	if idx < 0 {
		return nil
	}

	cheat := &cheats[idx]
	if update.GameID != nil {
		cheat.GameID = *update.GameID
	}
	if update.Name != nil {
		cheat.Name = *update.Name
	}
	if update.Description != nil {
		cheat.Description = *update.Description
	}
	if update.URL != nil {
		cheat.URL = *update.URL
	}
	if update.Image != nil {
		cheat.Image = *update.Image
	}
	if update.Downloads != nil {
		cheat.Downloads = *update.Downloads
	}
	if update.Tags != nil {
		cheat.Tags = slices.Clone(*update.Tags)
		if cheat.Tags == nil {
			cheat.Tags = []string{}
		}
	}

	if err := c.cheats.SaveCheats(ctx, cheats); err != nil {
		return storageError("cheats", err)
	}
	return nil
}

func (c *catalogService) DeleteCheat(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cheats := c.cheats.Cheats(ctx)
	remaining := slices.DeleteFunc(slices.Clone(cheats), func(ch models.Cheat) bool { return ch.ID == id })
	if len(remaining) == len(cheats) {
		return nil
	}

	if err := c.cheats.SaveCheats(ctx, remaining); err != nil {
		return storageError("cheats", err)
	}
	return nil
}

func (c *catalogService) CheatsForGame(ctx context.Context, gameID string) []models.Cheat {
	return c.FilterCheats(ctx, models.CheatFilter{GameID: gameID})
}

// FilterCheats keeps cheats matching every non-empty criterion of filter.
// Cheats without a game id never match a game filter.
func (c *catalogService) FilterCheats(ctx context.Context, filter models.CheatFilter) []models.Cheat {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	result := make([]models.Cheat, 0)
	for _, cheat := range c.cheats.Cheats(ctx) {
		if filter.GameID != "" && cheat.GameID != filter.GameID {
			continue
		}
		if len(filter.Tags) > 0 && !cheat.HasAnyTag(filter.Tags) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(cheat.Name), query) {
			continue
		}
		result = append(result, cheat)
	}
	return result
}

func (c *catalogService) Tags(ctx context.Context) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, cheat := range c.cheats.Cheats(ctx) {
		for _, tag := range cheat.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

func (c *catalogService) IncrementDownload(ctx context.Context, cheatID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cheats := c.cheats.Cheats(ctx)
	idx := slices.IndexFunc(cheats, func(ch models.Cheat) bool { return ch.ID == cheatID })
	if idx < 0 {
		return false, nil
	}
	cheats[idx].Downloads++

	if err := c.cheats.SaveCheats(ctx, cheats); err != nil {
		c.logger.Err(err).Str("cheat_id", cheatID).Msg("error saving download counter")
		return true, storageError("cheats", err)
	}

	c.metrics.Download()
	return true, nil
}

func (c *catalogService) Settings(ctx context.Context) models.SiteSettings {
	return c.settings.Settings(ctx)
}

// UpdateSettings merges the non-nil fields of update into the stored settings.
func (c *catalogService) UpdateSettings(ctx context.Context, update models.SiteSettingsUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	settings := c.settings.Settings(ctx)
	if update.HomepageVideoURL != nil {
		url := *update.HomepageVideoURL
		settings.HomepageVideoURL = &url
	}

	if err := c.settings.SaveSettings(ctx, settings); err != nil {
		return storageError("settings", err)
	}
	return nil
}

func (c *catalogService) ReplaceGames(ctx context.Context, games []models.Game) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.games.SaveGames(ctx, games); err != nil {
		return storageError("games", err)
	}
	return nil
}

func (c *catalogService) ReplaceCheats(ctx context.Context, cheats []models.Cheat) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cheats.SaveCheats(ctx, cheats); err != nil {
		return storageError("cheats", err)
	}
	return nil
}

func (c *catalogService) ReplaceSettings(ctx context.Context, settings models.SiteSettings) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.settings.SaveSettings(ctx, settings); err != nil {
		return storageError("settings", err)
	}
	return nil
}
