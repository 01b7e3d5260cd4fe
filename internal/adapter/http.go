// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/utils"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

// csrfHeader must match the header checked by the API.
const csrfHeader = "X-CSRF-Token"

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	mu        sync.Mutex
	csrfToken string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter returns a [CatalogAPI] for the API at address
// ("host:port" or a full URL).
func NewHTTPCatalogAdapter(address string, timeout time.Duration, logger *logger.Logger) (CatalogAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog api address: %w", err)
	}

	return &httpCatalogAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	return info, h.get(ctx, "/api/version", nil, &info)
}

func (h *httpCatalogAdapter) Games(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	return games, h.get(ctx, "/api/games", nil, &games)
}

func (h *httpCatalogAdapter) Game(ctx context.Context, id string) (models.GameDetailsResponse, error) {
	var details models.GameDetailsResponse
	return details, h.get(ctx, "/api/games/"+url.PathEscape(id), nil, &details)
}

func (h *httpCatalogAdapter) Cheats(ctx context.Context, filter models.CheatFilter) ([]models.Cheat, error) {
	query := url.Values{}
	if filter.GameID != "" {
		query.Set("game_id", filter.GameID)
	}
	for _, tag := range filter.Tags {
		query.Add("tag", tag)
	}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}

	var cheats []models.Cheat
	return cheats, h.get(ctx, "/api/cheats", query, &cheats)
}

func (h *httpCatalogAdapter) Cheat(ctx context.Context, id string) (models.Cheat, error) {
	var cheat models.Cheat
	return cheat, h.get(ctx, "/api/cheats/"+url.PathEscape(id), nil, &cheat)
}

func (h *httpCatalogAdapter) Tags(ctx context.Context) ([]string, error) {
	var tags []string
	return tags, h.get(ctx, "/api/tags", nil, &tags)
}

func (h *httpCatalogAdapter) Settings(ctx context.Context) (models.SettingsResponse, error) {
	var settings models.SettingsResponse
	return settings, h.get(ctx, "/api/settings", nil, &settings)
}

// Download retries once with a fresh token when the held one is rejected,
// e.g. after an API restart.
func (h *httpCatalogAdapter) Download(ctx context.Context, cheatID string) (models.DownloadResponse, error) {
	result, err := h.download(ctx, cheatID, false)
	if err == nil || !errors.Is(err, ErrForbidden) {
		return result, err
	}

	h.logger.Debug().Str("cheat_id", cheatID).Msg("csrf token rejected, requesting a new one")
	return h.download(ctx, cheatID, true)
}

func (h *httpCatalogAdapter) download(ctx context.Context, cheatID string, refresh bool) (models.DownloadResponse, error) {
	token, err := h.token(ctx, refresh)
	if err != nil {
		return models.DownloadResponse{}, err
	}

	var result models.DownloadResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(csrfHeader, token).
		SetResult(&result).
		Post("/api/cheats/" + url.PathEscape(cheatID) + "/download")
	if err != nil {
		return models.DownloadResponse{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadResponse{}, err
	}

	return result, nil
}

func (h *httpCatalogAdapter) token(ctx context.Context, refresh bool) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.csrfToken != "" && !refresh {
		return h.csrfToken, nil
	}

	var csrf models.CSRFResponse
	if err := h.get(ctx, "/api/csrf", nil, &csrf); err != nil {
		return "", fmt.Errorf("csrf token request: %w", err)
	}

	h.csrfToken = csrf.Token
	return h.csrfToken, nil
}

func (h *httpCatalogAdapter) get(ctx context.Context, path string, query url.Values, result any) error {
	req := h.client.R().
		SetContext(ctx).
		SetResult(result)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

