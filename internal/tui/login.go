// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the login screen: email and password inputs and an async
// login command. On success it returns to the menu with a greeting.
type LoginModel struct {
	env *env

	form       inputGroup
	submitting bool
	errMsg     string
}

func NewLoginModel(e *env) *LoginModel {
	m := &LoginModel{env: e}
	m.reset()
	return m
}

func (m *LoginModel) reset() {
	m.form = newInputGroup(
		inputField{label: "Email", limit: 254},
		inputField{label: "Пароль", limit: 256, secret: true},
	)
	m.submitting = false
	m.errMsg = ""
}

// Init implements [tea.Model]. Every visit starts with an empty form.
func (m *LoginModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [authResult]  clears the submitting state; navigates to the menu on success.
//   - esc           navigates back to the menu.
//   - tab/shift+tab moves focus between inputs.
//   - enter         checks that both fields are filled and dispatches the login.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = m.env.userMessage(result.err)
			return m, nil
		}
		return m, navigate(pageMenu, menuNotice{text: "Добро пожаловать, " + result.user.Name})
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			if email == "" || password == "" {
				m.errMsg = "Email и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		user, err := e.services.AuthService.Login(e.at(pageLogin), email, password)
		return authResult{user: user, err: err}
	}
}
