// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the catalog, built on Bubble Tea.
//
// A [RootModel] routes between pages (menu, login, register, games, cheats,
// admin panel). Pages never touch storage directly: every action goes through
// the service layer with a context stamped by [env.at], so security events
// record the screen they came from as a tui:// URL.
package tui
