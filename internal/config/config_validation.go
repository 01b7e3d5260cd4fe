// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the settings every binary needs: a storage DSN, a positive
// hashing cost, a complete seed admin identity and positive attempt limits.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PasswordIterations <= 0 {
		return fmt.Errorf("%w: password iterations must be positive", ErrInvalidAppConfigs)
	}

	if (cfg.App.SeedAdminName == "") != (cfg.App.SeedAdminEmail == "") {
		return fmt.Errorf("%w: seed admin needs both name and email", ErrInvalidAppConfigs)
	}

	s := cfg.Security
	if s.LoginMaxAttempts <= 0 || s.LoginWindow <= 0 || s.RegisterMaxAttempts <= 0 || s.RegisterWindow <= 0 {
		return ErrInvalidSecurityConfigs
	}

	return nil
}

// validateServer checks the settings the headless API binary needs on top of
// [StructuredConfig.validate].
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.DownloadRate <= 0 || cfg.Server.DownloadBurst <= 0 {
		return fmt.Errorf("%w: download throttle must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
