// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-cheat-catalog/models"
)

type formKind int

const (
	formGame formKind = iota
	formCheat
	formSettings
)

// adminForm is an open create/edit form of the admin panel. Values are sent
// to the admin service as typed; cleanup and validation happen there.
type adminForm struct {
	kind   formKind
	id     string
	gameID string
	inputs inputGroup
	errMsg string
	saving bool
}

func newGameForm(game *models.Game) *adminForm {
	var g models.Game
	if game != nil {
		g = *game
	}

	return &adminForm{
		kind: formGame,
		id:   g.ID,
		inputs: newInputGroup(
			inputField{label: "Название", limit: 100, value: g.Name},
			inputField{label: "Описание", limit: 1000, value: g.Description},
			inputField{label: "Изображение", limit: 2048, value: g.Image},
		),
	}
}

func newCheatForm(cheat *models.Cheat, gameID string) *adminForm {
	c := models.Cheat{GameID: gameID}
	if cheat != nil {
		c = *cheat
	}

	return &adminForm{
		kind:   formCheat,
		id:     c.ID,
		gameID: c.GameID,
		inputs: newInputGroup(
			inputField{label: "Название", limit: 100, value: c.Name},
			inputField{label: "Описание", limit: 1000, value: c.Description},
			inputField{label: "Ссылка", limit: 2048, value: c.URL},
			inputField{label: "Изображение", limit: 2048, value: c.Image},
			inputField{label: "Теги", limit: 500, value: strings.Join(c.Tags, ", ")},
		),
	}
}

func newSettingsForm(settings models.SiteSettings) *adminForm {
	var video string
	if settings.HomepageVideoURL != nil {
		video = *settings.HomepageVideoURL
	}

	return &adminForm{
		kind: formSettings,
		inputs: newInputGroup(
			inputField{label: "Видео (YouTube)", limit: 2048, value: video},
		),
	}
}

func (f *adminForm) title() string {
	switch f.kind {
	case formGame:
		if f.id == "" {
			return "НОВАЯ ИГРА"
		}
		return "РЕДАКТИРОВАНИЕ ИГРЫ"
	case formCheat:
		if f.id == "" {
			return "НОВЫЙ ЧИТ"
		}
		return "РЕДАКТИРОВАНИЕ ЧИТА"
	default:
		return "НАСТРОЙКИ САЙТА"
	}
}

func (f *adminForm) gameForm() models.GameForm {
	return models.GameForm{
		ID:          f.id,
		Name:        f.inputs.value(0),
		Description: f.inputs.value(1),
		Image:       f.inputs.value(2),
	}
}

func (f *adminForm) cheatForm() models.CheatForm {
	return models.CheatForm{
		ID:          f.id,
		GameID:      f.gameID,
		Name:        f.inputs.value(0),
		Description: f.inputs.value(1),
		URL:         f.inputs.value(2),
		Image:       f.inputs.value(3),
		Tags:        strings.Split(f.inputs.value(4), ","),
	}
}

func (f *adminForm) videoURL() string {
	return f.inputs.value(0)
}
