// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CheatsModel lists the cheats of one game, with a tag filter and a name
// search. Copying a download link counts as a download.
type CheatsModel struct {
	env *env

	game   models.Game
	cheats []models.Cheat
	tags   []string
	// tagIdx selects a tag from tags; -1 shows every tag.
	tagIdx int
	query  textinput.Model

	searching bool
	detail    bool
	idx       int
	status    string
	errMsg    string
}

func NewCheatsModel(e *env) *CheatsModel {
	query := textinput.New()
	query.Placeholder = "название"
	query.CharLimit = 100
	query.Width = 30

	return &CheatsModel{env: e, query: query, tagIdx: -1}
}

func (m *CheatsModel) Init() tea.Cmd {
	return nil
}

func (m *CheatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gameSelectedMsg:
		m.game = msg.game
		m.tagIdx = -1
		m.query.SetValue("")
		m.idx = 0
		m.detail = false
		m.status, m.errMsg = "", ""
		return m, m.cmdLoad()
	case cheatsLoadedMsg:
		m.cheats = msg.cheats
		m.tags = msg.tags
		m.idx = moveIndex(m.idx, 0, len(m.cheats))
		return m, nil
	case downloadDoneMsg:
		return m.handleDownload(msg)
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *CheatsModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
		m.searching = false
		m.query.Blur()
		m.idx = 0
		return m, m.cmdLoad()
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m *CheatsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.detail {
			m.detail = false
			return m, nil
		}
		return m, navigate(pageGames, nil)
	case key.Matches(msg, keys.up):
		m.idx = moveIndex(m.idx, -1, len(m.cheats))
	case key.Matches(msg, keys.down):
		m.idx = moveIndex(m.idx, 1, len(m.cheats))
	case key.Matches(msg, keys.enter):
		m.detail = len(m.cheats) > 0 && !m.detail
	case key.Matches(msg, keys.tag):
		if len(m.tags) == 0 {
			return m, nil
		}
		m.tagIdx++
		if m.tagIdx >= len(m.tags) {
			m.tagIdx = -1
		}
		m.idx = 0
		return m, m.cmdLoad()
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.query.Focus()
	case key.Matches(msg, keys.copy):
		if len(m.cheats) == 0 {
			return m, nil
		}
		m.status, m.errMsg = "", ""
		return m, m.cmdDownload(m.cheats[m.idx])
	}

	return m, nil
}

func (m *CheatsModel) handleDownload(msg downloadDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err != nil:
		m.errMsg = m.env.userMessage(msg.err)
		return m, nil
	case !msg.found:
		m.errMsg = m.env.userMessage(errCheatGone)
	case msg.copyErr != nil:
		m.env.logger.Warn().Err(msg.copyErr).Msg("clipboard is unavailable")
		m.status = "Ссылка: " + msg.cheat.URL
	default:
		m.status = "Ссылка скопирована в буфер обмена"
	}

	return m, m.cmdLoad()
}

func (m *CheatsModel) filter() models.CheatFilter {
	filter := models.CheatFilter{
		GameID: m.game.ID,
		Query:  m.query.Value(),
	}
	if m.tagIdx >= 0 && m.tagIdx < len(m.tags) {
		filter.Tags = []string{m.tags[m.tagIdx]}
	}
	return filter
}

func (m *CheatsModel) cmdLoad() tea.Cmd {
	e := m.env
	gameID := m.game.ID
	filter := m.filter()

	return func() tea.Msg {
		ctx := e.at(pageCheats + "/" + gameID)
		return cheatsLoadedMsg{
			cheats: e.services.CatalogService.FilterCheats(ctx, filter),
			tags:   distinctTags(e.services.CatalogService.CheatsForGame(ctx, gameID)),
		}
	}
}

// cmdDownload counts the download, then copies the link.
func (m *CheatsModel) cmdDownload(cheat models.Cheat) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		found, err := e.services.CatalogService.IncrementDownload(e.at(pageCheats+"/"+cheat.GameID), cheat.ID)
		if err != nil || !found {
			return downloadDoneMsg{cheat: cheat, found: found, err: err}
		}

		return downloadDoneMsg{cheat: cheat, found: true, copyErr: e.copyText(cheat.URL)}
	}
}

func distinctTags(cheats []models.Cheat) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, c := range cheats {
		for _, tag := range c.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

func (m *CheatsModel) View() string {
	var b strings.Builder

	tag := "все"
	if m.tagIdx >= 0 && m.tagIdx < len(m.tags) {
		tag = m.tags[m.tagIdx]
	}
	b.WriteString(fmt.Sprintf("Тег: %s │ Поиск: [%s]\n\n", tag, m.query.View()))

	if len(m.cheats) == 0 {
		b.WriteString("Читы не найдены\n")
	} else if m.detail {
		m.writeDetail(&b, m.cheats[m.idx])
	} else {
		b.WriteString(fmt.Sprintf("  %-30s │ %9s │ %s\n", "Чит", "Загрузки", "Теги"))
		b.WriteString("──────────────────────────────────┼───────────┼───────────\n")
		for i, c := range m.cheats {
			line := fmt.Sprintf("%s %-30s │ %9d │ %s", cursor(i == m.idx), fitText(c.Name, 30), c.Downloads, strings.Join(c.Tags, ", "))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	renderStatus(&b, m.status, m.errMsg)

	hotKeys := "enter: подробнее │ c: скопировать ссылку │ t: тег │ /: поиск │ esc: назад"
	if m.searching {
		hotKeys = "enter: применить │ esc: применить"
	}
	return renderPage("ЧИТЫ: "+strings.ToUpper(m.game.Name), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *CheatsModel) writeDetail(b *strings.Builder, c models.Cheat) {
	rows := [][2]string{
		{"Название", c.Name},
		{"Описание", valueOrDash(c.Description)},
		{"Ссылка", valueOrDash(c.URL)},
		{"Изображение", valueOrDash(fitText(c.Image, 60))},
		{"Загрузки", fmt.Sprintf("%d", c.Downloads)},
		{"Добавлен", c.CreatedAt},
		{"Теги", valueOrDash(strings.Join(c.Tags, ", "))},
	}

	var inner strings.Builder
	for _, row := range rows {
		inner.WriteString(fmt.Sprintf("%-12s │ %s\n", row[0], row[1]))
	}
	b.WriteString(boxStyle.Render(strings.TrimRight(inner.String(), "\n")))
	b.WriteString("\n")
}
