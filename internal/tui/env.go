// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/service"
	"github.com/MKhiriev/go-cheat-catalog/internal/utils"
	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/atotto/clipboard"
)

// env is shared by every page.
type env struct {
	ctx      context.Context
	services *service.Services
	agent    string
	logger   *logger.Logger

	// copyText writes to the system clipboard.
	copyText func(string) error
}

func newEnv(ctx context.Context, services *service.Services, version string, logger *logger.Logger) *env {
	return &env{
		ctx:      ctx,
		services: services,
		agent:    userAgent(version),
		logger:   logger,
		copyText: clipboard.WriteAll,
	}
}

func userAgent(version string) string {
	return fmt.Sprintf("go-cheat-catalog/%s (%s/%s)", version, runtime.GOOS, runtime.GOARCH)
}

// at returns the base context stamped with the given screen.
func (e *env) at(screen string) context.Context {
	return utils.WithClientInfo(e.ctx, models.ClientInfo{
		UserAgent: e.agent,
		URL:       "tui://" + screen,
	})
}

// userMessage turns a service error into text for the user. Errors that are
// not meant for the user are logged and replaced with a generic message.
func (e *env) userMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	for _, userErr := range []error{
		service.ErrInvalidCredentials,
		service.ErrTooManyLoginAttempts,
		service.ErrTooManyRegisterAttempts,
		service.ErrUserAlreadyExists,
		service.ErrAdminAccessDenied,
		service.ErrGameNotFound,
		service.ErrCheatNotFound,
	} {
		if errors.Is(err, userErr) {
			return userErr.Error()
		}
	}

	e.logger.Err(err).Msg("operation failed")
	return "Не удалось выполнить операцию. Подробности в журнале."
}
