// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type inputField struct {
	label  string
	limit  int
	secret bool
	value  string
}

// inputGroup is a vertical form of text inputs with tab focus cycling.
type inputGroup struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newInputGroup(fields ...inputField) inputGroup {
	g := inputGroup{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(f.label)
		in.CharLimit = f.limit
		in.Width = 40
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		in.SetValue(f.value)

		g.labels[i] = f.label
		g.inputs[i] = in
	}
	if len(g.inputs) > 0 {
		g.inputs[0].Focus()
	}

	return g
}

func (g *inputGroup) next() {
	g.inputs[g.focus].Blur()
	g.focus = (g.focus + 1) % len(g.inputs)
	g.inputs[g.focus].Focus()
}

func (g *inputGroup) prev() {
	g.inputs[g.focus].Blur()
	g.focus = (g.focus - 1 + len(g.inputs)) % len(g.inputs)
	g.inputs[g.focus].Focus()
}

// update forwards msg to the focused input.
func (g *inputGroup) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.inputs[g.focus], cmd = g.inputs[g.focus].Update(msg)
	return cmd
}

func (g *inputGroup) value(i int) string {
	return g.inputs[i].Value()
}

func (g *inputGroup) view() string {
	width := lipgloss.Width("Поле")
	for _, label := range g.labels {
		if w := lipgloss.Width(label); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Значение\n", width, "Поле"))
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, label := range g.labels {
		b.WriteString(fmt.Sprintf("%-*s │ [", width, label))
		b.WriteString(g.inputs[i].View())
		b.WriteString("]\n")
	}

	return b.String()
}
