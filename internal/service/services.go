// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-cheat-catalog/internal/audit"
	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/crypto"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/metrics"
	"github.com/MKhiriev/go-cheat-catalog/internal/ratelimit"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
	"github.com/MKhiriev/go-cheat-catalog/internal/utils"
	"github.com/MKhiriev/go-cheat-catalog/internal/validators"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	AdminService   AdminService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	securityLog audit.SecurityLogger,
	m *metrics.Metrics,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	auth := NewAuthService(
		storages,
		crypto.NewPasswordHasher(cfg.App.PasswordIterations),
		ratelimit.NewLimiter(),
		securityLog,
		ids,
		cfg,
		logger,
	)
	catalog := NewCatalogService(storages, ids, m, logger)

	return &Services{
		AuthService:    auth,
		CatalogService: catalog,
		AdminService:   NewAdminService(auth, catalog, validators.NewFormValidator(), securityLog, logger),
		AppInfoService: appInfo,
	}, nil
}
