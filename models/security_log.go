// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Security event names. They are persisted and must stay stable.
const (
	EventInvalidEmailAttempt       = "invalid_email_attempt"
	EventInvalidNameAttempt        = "invalid_name_attempt"
	EventWeakPasswordAttempt       = "weak_password_attempt"
	EventRateLimitExceeded         = "rate_limit_exceeded"
	EventLoginFailedUserNotFound   = "login_failed_user_not_found"
	EventLoginFailedWrongPassword  = "login_failed_wrong_password"
	EventLoginSuccess              = "login_success"
	EventRegisterFailedEmailExists = "register_failed_email_exists"
	EventRegisterSuccess           = "register_success"
	EventLogout                    = "logout"
	EventUnauthorizedAdminAccess   = "unauthorized_admin_access"
	EventAdminGameCreate           = "admin_game_create"
	EventAdminGameUpdate           = "admin_game_update"
	EventAdminGameDelete           = "admin_game_delete"
	EventAdminCheatCreate          = "admin_cheat_create"
	EventAdminCheatUpdate          = "admin_cheat_update"
	EventAdminCheatDelete          = "admin_cheat_delete"
	EventAdminSettingsUpdate       = "admin_settings_update"
)

// SecurityLogEntry is one persisted security event.
type SecurityLogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Event     string         `json:"event"`
	Details   map[string]any `json:"details,omitempty"`
	UserAgent string         `json:"user_agent"`
	URL       string         `json:"url"`
}

// RateLimitEntry is the fixed-window state of one limiter key.
type RateLimitEntry struct {
	Count   int
	ResetAt time.Time
}

// ClientInfo identifies the client an event originated from: the user agent
// and the location (screen or request URL) active when it happened.
type ClientInfo struct {
	UserAgent string
	URL       string
}
