// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cheat-catalog/internal/validators"
	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// GamesModel lists the games of the catalog.
type GamesModel struct {
	env *env

	games    []models.Game
	settings models.SiteSettings
	idx      int
	loading  bool
}

func NewGamesModel(e *env) *GamesModel {
	return &GamesModel{env: e}
}

func (m *GamesModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *GamesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gamesLoadedMsg:
		m.loading = false
		m.games = msg.games
		m.settings = msg.settings
		m.idx = moveIndex(m.idx, 0, len(m.games))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.up):
			m.idx = moveIndex(m.idx, -1, len(m.games))
		case key.Matches(msg, keys.down):
			m.idx = moveIndex(m.idx, 1, len(m.games))
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.cmdLoad()
		case key.Matches(msg, keys.enter):
			if len(m.games) == 0 {
				return m, nil
			}
			return m, navigate(pageCheats, gameSelectedMsg{game: m.games[m.idx]})
		}
	}

	return m, nil
}

func (m *GamesModel) cmdLoad() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		ctx := e.at(pageGames)
		return gamesLoadedMsg{
			games:    e.services.CatalogService.Games(ctx),
			settings: e.services.CatalogService.Settings(ctx),
		}
	}
}

func (m *GamesModel) View() string {
	var b strings.Builder

	if m.settings.HomepageVideoURL != nil {
		if id, ok := validators.ExtractVideoID(*m.settings.HomepageVideoURL); ok {
			b.WriteString("Видео: ")
			b.WriteString(validators.EmbedURL(id))
			b.WriteString("\n\n")
		}
	}

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.games) == 0:
		b.WriteString("Каталог пуст\n")
	default:
		b.WriteString(fmt.Sprintf("  %-30s │ %9s │ %s\n", "Игра", "Загрузки", "Добавлена"))
		b.WriteString("──────────────────────────────────┼───────────┼───────────\n")
		for i, g := range m.games {
			line := fmt.Sprintf("%s %-30s │ %9d │ %s", cursor(i == m.idx), fitText(g.Name, 30), g.Downloads, g.CreatedAt)
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(valueOrDash(m.games[m.idx].Description))
		b.WriteString("\n")
	}

	return renderPage("КАТАЛОГ ИГР", strings.TrimRight(b.String(), "\n"), "enter: читы │ ↑/↓: навигация │ r: обновить │ esc: назад")
}
