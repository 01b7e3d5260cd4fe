// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuAction int

const (
	actionCatalog menuAction = iota
	actionLogin
	actionRegister
	actionAdmin
	actionLogout
	actionQuit
)

type menuItem struct {
	label  string
	action menuAction
}

// MenuModel is the start page. Its items depend on whether a user is
// logged in.
type MenuModel struct {
	env *env

	idx    int
	status string
	errMsg string
}

func NewMenuModel(e *env) *MenuModel {
	return &MenuModel{env: e}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) items() []menuItem {
	if m.env.services.AuthService.CurrentUser() == nil {
		return []menuItem{
			{"Каталог игр", actionCatalog},
			{"Войти", actionLogin},
			{"Зарегистрироваться", actionRegister},
			{"Выход", actionQuit},
		}
	}

	return []menuItem{
		{"Каталог игр", actionCatalog},
		{"Админ-панель", actionAdmin},
		{"Выйти из аккаунта", actionLogout},
		{"Выход", actionQuit},
	}
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case menuNotice:
		m.status, m.errMsg = "", ""
		if msg.isErr {
			m.errMsg = msg.text
		} else {
			m.status = msg.text
		}
		m.idx = moveIndex(m.idx, 0, len(m.items()))
		return m, nil
	case tea.KeyMsg:
		items := m.items()
		switch {
		case key.Matches(msg, keys.up):
			m.idx = moveIndex(m.idx, -1, len(items))
		case key.Matches(msg, keys.down):
			m.idx = moveIndex(m.idx, 1, len(items))
		case key.Matches(msg, keys.enter):
			m.status, m.errMsg = "", ""
			return m, m.run(items[m.idx].action)
		}
	}

	return m, nil
}

func (m *MenuModel) run(action menuAction) tea.Cmd {
	switch action {
	case actionCatalog:
		return navigate(pageGames, nil)
	case actionLogin:
		return navigate(pageLogin, nil)
	case actionRegister:
		return navigate(pageRegister, nil)
	case actionAdmin:
		return m.cmdOpenAdmin()
	case actionLogout:
		return m.cmdLogout()
	default:
		return tea.Quit
	}
}

// cmdOpenAdmin goes through the admin gate, which records denied attempts.
func (m *MenuModel) cmdOpenAdmin() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		if _, err := e.services.AdminService.RequireAdmin(e.at(pageMenu), service.AccessAdminPanel); err != nil {
			return menuNotice{text: e.userMessage(err), isErr: true}
		}
		return NavigateTo{Page: pageAdmin}
	}
}

func (m *MenuModel) cmdLogout() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		if err := e.services.AuthService.Logout(e.at(pageMenu)); err != nil {
			return menuNotice{text: e.userMessage(err), isErr: true}
		}
		return menuNotice{text: "Вы вышли из аккаунта"}
	}
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if user := m.env.services.AuthService.CurrentUser(); user != nil {
		b.WriteString(fmt.Sprintf("Пользователь: %s <%s> (%s)\n\n", user.Name, user.Email, user.Role))
	} else {
		b.WriteString("Пользователь: гость\n\n")
	}

	items := m.items()
	actionColWidth := lipgloss.Width("Действие")
	for _, item := range items {
		if w := lipgloss.Width(item.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", "ID", actionColWidth, "Действие"))
	b.WriteString("─────┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")
	for i, item := range items {
		line := fmt.Sprintf("%s %-2d │ %-*s", cursor(i == m.idx), i+1, actionColWidth, item.label)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	renderStatus(&b, m.status, m.errMsg)

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
