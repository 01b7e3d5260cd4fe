// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DateLayout is the layout of Game.CreatedAt and Cheat.CreatedAt.
const DateLayout = "2006-01-02"

// Game is a catalog entry grouping cheats.
type Game struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	// Image is an external URL or a data URL.
	Image     string `json:"image" yaml:"image"`
	Downloads int    `json:"downloads" yaml:"downloads"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// Cheat is a downloadable entry belonging to a game.
// GameID is not checked against existing games.
type Cheat struct {
	ID          string   `json:"id" yaml:"id"`
	GameID      string   `json:"game_id" yaml:"game_id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Image       string   `json:"image" yaml:"image"`
	Downloads   int      `json:"downloads" yaml:"downloads"`
	CreatedAt   string   `json:"created_at" yaml:"created_at"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// HasAnyTag reports whether the cheat carries at least one of tags.
func (c Cheat) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range c.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// SiteSettings holds site-wide presentation settings.
type SiteSettings struct {
	HomepageVideoURL *string `json:"homepage_video_url,omitempty"`
}

// GameInput is the payload for creating a game. Identity, counter and
// creation date are assigned by the catalog.
type GameInput struct {
	Name        string
	Description string
	Image       string
}

// GameUpdate is a partial game update; nil fields are left untouched.
type GameUpdate struct {
	Name        *string
	Description *string
	Image       *string
	Downloads   *int
}

// CheatInput is the payload for creating a cheat.
type CheatInput struct {
	GameID      string
	Name        string
	Description string
	URL         string
	Image       string
	Tags        []string
}

// CheatUpdate is a partial cheat update; nil fields are left untouched.
type CheatUpdate struct {
	GameID      *string
	Name        *string
	Description *string
	URL         *string
	Image       *string
	Downloads   *int
	Tags        *[]string
}

// SiteSettingsUpdate is a partial settings update merged over the current
// settings. A nil field keeps the stored value.
type SiteSettingsUpdate struct {
	HomepageVideoURL *string
}

// CheatFilter narrows a cheat listing. Zero value matches everything.
type CheatFilter struct {
	// GameID restricts results to one game when non-empty.
	GameID string
	// Tags keeps cheats carrying any of the given tags.
	Tags []string
	// Query is a case-insensitive substring of the cheat name.
	Query string
}
