// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type adminSection int

const (
	sectionGames adminSection = iota
	sectionCheats
	sectionSettings
	sectionLog
	sectionCount
)

var sectionTitles = [sectionCount]string{"Игры", "Читы", "Настройки", "Журнал безопасности"}

// sectionAccess names each section in unauthorized_admin_access events.
var sectionAccess = [sectionCount]string{
	service.AccessCatalogChange,
	service.AccessCatalogChange,
	service.AccessSettings,
	service.AccessSecurityLog,
}

// AdminModel is the admin panel. The menu only opens it for admins, and
// every action is checked again by the admin service.
type AdminModel struct {
	env *env

	section  adminSection
	games    []models.Game
	cheats   []models.Cheat
	events   []models.SecurityLogEntry
	settings models.SiteSettings
	gameIdx  int
	cheatIdx int
	eventIdx int

	form          *adminForm
	confirmDelete bool
	status        string
	errMsg        string
}

func NewAdminModel(e *env) *AdminModel {
	return &AdminModel{env: e}
}

func (m *AdminModel) Init() tea.Cmd {
	m.form = nil
	m.confirmDelete = false
	m.status, m.errMsg = "", ""
	return m.cmdLoad()
}

func (m *AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case adminLoadedMsg:
		if msg.err != nil {
			return m, navigate(pageMenu, menuNotice{text: m.env.userMessage(msg.err), isErr: true})
		}
		m.games, m.cheats, m.settings = msg.games, msg.cheats, msg.settings
		m.events = msg.events
		m.gameIdx = moveIndex(m.gameIdx, 0, len(m.games))
		m.cheatIdx = moveIndex(m.cheatIdx, 0, len(m.cheats))
		m.eventIdx = moveIndex(m.eventIdx, 0, len(m.events))
		return m, nil
	case adminSavedMsg:
		if msg.err != nil {
			errMsg := m.env.userMessage(msg.err)
			if m.form != nil {
				m.form.saving = false
				m.form.errMsg = errMsg
			} else {
				m.errMsg = errMsg
			}
			return m, nil
		}
		m.form = nil
		m.status, m.errMsg = msg.status, ""
		return m, m.cmdLoad()
	case tea.KeyMsg:
		switch {
		case m.form != nil:
			return m.updateForm(msg)
		case m.confirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.form != nil {
		return m, m.form.inputs.update(msg)
	}
	return m, nil
}

func (m *AdminModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageMenu, nil)
	case key.Matches(msg, keys.tab):
		return m, m.switchSection((m.section + 1) % sectionCount)
	case key.Matches(msg, keys.backtab):
		return m, m.switchSection((m.section + sectionCount - 1) % sectionCount)
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
	case key.Matches(msg, keys.reload):
		return m, m.cmdLoad()
	case key.Matches(msg, keys.newItem):
		return m, m.openForm(true)
	case key.Matches(msg, keys.edit):
		return m, m.openForm(false)
	case key.Matches(msg, keys.delete):
		if m.selectedID() != "" {
			m.confirmDelete = true
		}
	}

	return m, nil
}

// switchSection re-checks access for the new section so a session change
// is noticed and recorded.
func (m *AdminModel) switchSection(next adminSection) tea.Cmd {
	m.section = next
	m.status, m.errMsg = "", ""

	e := m.env
	access := sectionAccess[next]
	return func() tea.Msg {
		if _, err := e.services.AdminService.RequireAdmin(e.at(pageAdmin), access); err != nil {
			return adminLoadedMsg{err: err}
		}
		return nil
	}
}

func (m *AdminModel) moveCursor(delta int) {
	switch m.section {
	case sectionGames:
		m.gameIdx = moveIndex(m.gameIdx, delta, len(m.games))
	case sectionCheats:
		m.cheatIdx = moveIndex(m.cheatIdx, delta, len(m.cheats))
	case sectionLog:
		m.eventIdx = moveIndex(m.eventIdx, delta, len(m.events))
	}
}

func (m *AdminModel) selectedID() string {
	switch {
	case m.section == sectionGames && len(m.games) > 0:
		return m.games[m.gameIdx].ID
	case m.section == sectionCheats && len(m.cheats) > 0:
		return m.cheats[m.cheatIdx].ID
	}
	return ""
}

func (m *AdminModel) openForm(create bool) tea.Cmd {
	switch m.section {
	case sectionGames:
		if create {
			m.form = newGameForm(nil)
		} else if len(m.games) > 0 {
			m.form = newGameForm(&m.games[m.gameIdx])
		}
	case sectionCheats:
		if create {
			if len(m.games) == 0 {
				m.errMsg = "Сначала добавьте игру"
				return nil
			}
			m.form = newCheatForm(nil, m.games[m.gameIdx].ID)
		} else if len(m.cheats) > 0 {
			m.form = newCheatForm(&m.cheats[m.cheatIdx], "")
		}
	case sectionSettings:
		if !create {
			m.form = newSettingsForm(m.settings)
		}
	}

	if m.form == nil {
		return nil
	}
	m.status, m.errMsg = "", ""
	return textinput.Blink
}

func (m *AdminModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.form = nil
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.inputs.next()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.inputs.prev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.saving {
			return m, nil
		}
		m.form.saving = true
		m.form.errMsg = ""
		return m, m.cmdSave(m.form)
	}

	return m, m.form.inputs.update(msg)
}

func (m *AdminModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmDelete = false
		return m, m.cmdDelete(m.section, m.selectedID())
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirmDelete = false
	}
	return m, nil
}

func (m *AdminModel) cmdLoad() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		ctx := e.at(pageAdmin)

		events, err := e.services.AdminService.SecurityEvents(ctx)
		if err != nil {
			return adminLoadedMsg{err: err}
		}

		return adminLoadedMsg{
			games:    e.services.CatalogService.Games(ctx),
			cheats:   e.services.CatalogService.Cheats(ctx),
			settings: e.services.CatalogService.Settings(ctx),
			events:   events,
		}
	}
}

func (m *AdminModel) cmdSave(form *adminForm) tea.Cmd {
	e := m.env
	admin := e.services.AdminService

	switch form.kind {
	case formGame:
		input := form.gameForm()
		return func() tea.Msg {
			game, err := admin.SaveGame(e.at(pageAdmin+"/games"), input)
			return adminSavedMsg{status: "Игра сохранена: " + game.Name, err: err}
		}
	case formCheat:
		input := form.cheatForm()
		return func() tea.Msg {
			cheat, err := admin.SaveCheat(e.at(pageAdmin+"/cheats"), input)
			return adminSavedMsg{status: "Чит сохранён: " + cheat.Name, err: err}
		}
	default:
		url := form.videoURL()
		return func() tea.Msg {
			err := admin.SetHomepageVideo(e.at(pageAdmin+"/settings"), url)
			return adminSavedMsg{status: "Настройки сохранены", err: err}
		}
	}
}

func (m *AdminModel) cmdDelete(section adminSection, id string) tea.Cmd {
	e := m.env
	admin := e.services.AdminService

	if section == sectionGames {
		return func() tea.Msg {
			err := admin.DeleteGame(e.at(pageAdmin+"/games"), id)
			return adminSavedMsg{status: "Игра и её читы удалены", err: err}
		}
	}
	return func() tea.Msg {
		err := admin.DeleteCheat(e.at(pageAdmin+"/cheats"), id)
		return adminSavedMsg{status: "Чит удалён", err: err}
	}
}

func (m *AdminModel) View() string {
	if m.form != nil {
		return m.viewForm()
	}

	var b strings.Builder
	for i, title := range sectionTitles {
		if adminSection(i) == m.section {
			b.WriteString(selectedStyle.Render("[" + title + "]"))
		} else {
			b.WriteString(" " + title + " ")
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	hotKeys := "tab: раздел │ n: создать │ e: изменить │ d: удалить │ esc: назад"
	switch m.section {
	case sectionGames:
		m.viewGames(&b)
	case sectionCheats:
		m.viewCheats(&b)
	case sectionSettings:
		m.viewSettings(&b)
		hotKeys = "tab: раздел │ e: изменить │ esc: назад"
	case sectionLog:
		m.viewLog(&b)
		hotKeys = "tab: раздел │ ↑/↓: навигация │ r: обновить │ esc: назад"
	}

	if m.confirmDelete {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render("Удалить выбранную запись? (y/n)"))
		b.WriteString("\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("АДМИН-ПАНЕЛЬ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *AdminModel) viewGames(b *strings.Builder) {
	if len(m.games) == 0 {
		b.WriteString("Игр нет\n")
		return
	}
	for i, g := range m.games {
		cheats := 0
		for _, c := range m.cheats {
			if c.GameID == g.ID {
				cheats++
			}
		}
		line := fmt.Sprintf("%s %-30s │ читов: %3d │ загрузок: %d", cursor(i == m.gameIdx), fitText(g.Name, 30), cheats, g.Downloads)
		if i == m.gameIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func (m *AdminModel) viewCheats(b *strings.Builder) {
	if len(m.cheats) == 0 {
		b.WriteString("Читов нет\n")
		return
	}

	gameNames := make(map[string]string, len(m.games))
	for _, g := range m.games {
		gameNames[g.ID] = g.Name
	}
	for i, c := range m.cheats {
		game, ok := gameNames[c.GameID]
		if !ok {
			game = "?"
		}
		line := fmt.Sprintf("%s %-30s │ %-20s │ %s", cursor(i == m.cheatIdx), fitText(c.Name, 30), fitText(game, 20), strings.Join(c.Tags, ", "))
		if i == m.cheatIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.games) > 0 {
		b.WriteString("\nНовый чит будет добавлен к игре: ")
		b.WriteString(m.games[m.gameIdx].Name)
		b.WriteString("\n")
	}
}

func (m *AdminModel) viewSettings(b *strings.Builder) {
	b.WriteString("Видео на главной: ")
	if m.settings.HomepageVideoURL != nil {
		b.WriteString(valueOrDash(*m.settings.HomepageVideoURL))
	} else {
		b.WriteString("-")
	}
	b.WriteString("\n")
}

// viewLog shows the newest events first.
func (m *AdminModel) viewLog(b *strings.Builder) {
	if len(m.events) == 0 {
		b.WriteString("Журнал пуст\n")
		return
	}

	for i := range m.events {
		entry := m.events[len(m.events)-1-i]
		line := fmt.Sprintf("%s %s │ %-30s │ %s", cursor(i == m.eventIdx), entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Event, entry.URL)
		if i == m.eventIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	selected := m.events[len(m.events)-1-m.eventIdx]
	details, _ := json.Marshal(selected.Details)
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(fmt.Sprintf("Агент: %s\nДетали: %s", selected.UserAgent, details)))
	b.WriteString("\n")
}

func (m *AdminModel) viewForm() string {
	var b strings.Builder
	b.WriteString(m.form.inputs.view())

	if m.form.saving {
		b.WriteString("\n[Сохранить...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}
	if m.form.kind == formCheat {
		b.WriteString(helpStyle.Render("Теги через запятую, не больше 10"))
		b.WriteString("\n")
	}
	renderStatus(&b, "", m.form.errMsg)

	return renderPage(m.form.title(), strings.TrimRight(b.String(), "\n"), "esc: отмена │ tab: след. поле │ enter: сохранить")
}
