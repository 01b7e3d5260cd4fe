// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/crypto"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/metrics"
	"github.com/MKhiriev/go-cheat-catalog/internal/service"
)

type Handler struct {
	services *service.Services
	tokens   crypto.TokenIssuer
	metrics  *metrics.Metrics

	downloads *clientLimiter
	cfg       config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, tokens crypto.TokenIssuer, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		tokens:    tokens,
		metrics:   m,
		downloads: newClientLimiter(cfg.DownloadRate, cfg.DownloadBurst),
		cfg:       cfg,
		logger:    logger,
	}
}
