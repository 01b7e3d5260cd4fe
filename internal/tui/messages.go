// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-cheat-catalog/models"

// Page names accepted by [NavigateTo].
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageGames    = "games"
	pageCheats   = "cheats"
	pageAdmin    = "admin"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page after its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// menuNotice is a one-line status shown on the menu.
type menuNotice struct {
	text  string
	isErr bool
}

type authResult struct {
	user models.SessionUser
	err  error
}

type gamesLoadedMsg struct {
	games    []models.Game
	settings models.SiteSettings
}

type gameSelectedMsg struct {
	game models.Game
}

type cheatsLoadedMsg struct {
	cheats []models.Cheat
	tags   []string
}

type downloadDoneMsg struct {
	cheat   models.Cheat
	found   bool
	err     error
	copyErr error
}

type adminLoadedMsg struct {
	games    []models.Game
	cheats   []models.Cheat
	settings models.SiteSettings
	events   []models.SecurityLogEntry
	err      error
}

type adminSavedMsg struct {
	status string
	err    error
}
