// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the registration screen. A successful registration also
// logs the new user in.
type RegisterModel struct {
	env *env

	form       inputGroup
	submitting bool
	errMsg     string
}

func NewRegisterModel(e *env) *RegisterModel {
	m := &RegisterModel{env: e}
	m.reset()
	return m
}

func (m *RegisterModel) reset() {
	m.form = newInputGroup(
		inputField{label: "Имя", limit: 50},
		inputField{label: "Email", limit: 254},
		inputField{label: "Пароль", limit: 128, secret: true},
		inputField{label: "Повтор пароля", limit: 128, secret: true},
	)
	m.submitting = false
	m.errMsg = ""
}

func (m *RegisterModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = m.env.userMessage(result.err)
			return m, nil
		}

		text := "Пользователь " + result.user.Name + " успешно зарегистрирован"
		if result.user.Role == models.RoleAdmin {
			text += " (администратор)"
		}
		return m, navigate(pageMenu, menuNotice{text: text})
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

			if m.form.value(2) != m.form.value(3) {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(m.form.value(0), strings.TrimSpace(m.form.value(1)), m.form.value(2))
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

// cmdRegister passes the raw name through; the service validates it.
func (m *RegisterModel) cmdRegister(name, email, password string) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		user, err := e.services.AuthService.Register(e.at(pageRegister), name, email, password)
		return authResult{user: user, err: err}
	}
}
