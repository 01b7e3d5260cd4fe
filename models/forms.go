// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GameForm is the admin create/edit payload for a game. An empty ID means create.
type GameForm struct {
	ID          string
	Name        string `validate:"min=2,max=100"`
	Description string
	Image       string
}

// CheatForm is the admin create/edit payload for a cheat. An empty ID means create.
type CheatForm struct {
	ID          string
	GameID      string
	Name        string `validate:"min=2,max=100"`
	Description string
	URL         string `validate:"omitempty,httpurl"`
	Image       string
	Tags        []string `validate:"max=10"`
}

// SettingsForm is the admin payload for site settings. An empty video URL
// clears the homepage video.
type SettingsForm struct {
	HomepageVideoURL string `validate:"omitempty,videourl"`
}
