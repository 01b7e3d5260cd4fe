// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Run shows the UI until the user quits or ctx is cancelled. A Ctrl+C quit
// returns ErrUserQuit; a cancelled ctx returns nil.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	appInfo := t.services.AppInfoService
	e := newEnv(ctx, t.services, appInfo.GetAppVersion(ctx), t.logger)

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(e),
		pageLogin:    NewLoginModel(e),
		pageRegister: NewRegisterModel(e),
		pageGames:    NewGamesModel(e),
		pageCheats:   NewCheatsModel(e),
		pageAdmin:    NewAdminModel(e),
	}

	return NewRootModel(pages, pageMenu, appInfo.BuildInfo(ctx))
}
