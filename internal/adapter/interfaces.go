// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the public catalog API served by
// cmd/server (or by cmd/catalog when an API address is configured).
//
// HTTP status codes are mapped to the sentinel errors of errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrForbidden] for a rejected CSRF token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cheat-catalog/models"
)

// CatalogAPI is the read side of the catalog plus the download counter.
type CatalogAPI interface {
	Version(ctx context.Context) (models.AppBuildInfo, error)

	Games(ctx context.Context) ([]models.Game, error)
	// Game returns the game together with its cheats.
	Game(ctx context.Context, id string) (models.GameDetailsResponse, error)

	Cheats(ctx context.Context, filter models.CheatFilter) ([]models.Cheat, error)
	Cheat(ctx context.Context, id string) (models.Cheat, error)
	Tags(ctx context.Context) ([]string, error)

	Settings(ctx context.Context) (models.SettingsResponse, error)

	// Download counts one download of the cheat and returns its link. A
	// CSRF token is requested first when the client holds none.
	Download(ctx context.Context, cheatID string) (models.DownloadResponse, error)
}
