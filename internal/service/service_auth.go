// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-cheat-catalog/internal/audit"
	"github.com/MKhiriev/go-cheat-catalog/internal/config"
	"github.com/MKhiriev/go-cheat-catalog/internal/crypto"
	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/internal/store"
	"github.com/MKhiriev/go-cheat-catalog/internal/utils"
	"github.com/MKhiriev/go-cheat-catalog/internal/validators"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

const (
	loginLimitPrefix    = "login_"
	registerLimitPrefix = "register_"
)

type authService struct {
	users    store.UserRepository
	sessions store.SessionRepository

	hasher      crypto.PasswordHasher
	limiter     RateLimiter
	securityLog audit.SecurityLogger
	ids         utils.IDGenerator

	security  config.Security
	seedAdmin config.App

	// guards current and loading; also serialises read-modify-write of the
	// user table
	mu      sync.RWMutex
	current *models.SessionUser
	loading bool

	logger *logger.Logger
}

// NewAuthService wires the auth pipeline. The service starts in the loading
// state; call Init before reading CurrentUser.
func NewAuthService(
	storages *store.Storages,
	hasher crypto.PasswordHasher,
	limiter RateLimiter,
	securityLog audit.SecurityLogger,
	ids utils.IDGenerator,
	cfg config.StructuredConfig,
	log *logger.Logger,
) AuthService {
	return &authService{
		users:       storages.Users,
		sessions:    storages.Session,
		hasher:      hasher,
		limiter:     limiter,
		securityLog: securityLog,
		ids:         ids,
		security:    cfg.Security,
		seedAdmin:   cfg.App,
		loading:     true,
		logger:      log,
	}
}

func (a *authService) Init(ctx context.Context) {
	session := a.sessions.Session(ctx)

	a.mu.Lock()
	a.current = session
	a.loading = false
	a.mu.Unlock()

	if session != nil {
		a.logger.Debug().Str("user_id", session.ID).Msg("restored session")
	}
}

func (a *authService) IsLoading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

func (a *authService) CurrentUser() *models.SessionUser {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.current == nil {
		return nil
	}
	user := *a.current
	return &user
}

// Register validates name, email and password in that order, applies the
// registration limit, rejects duplicate emails and creates the account.
func (a *authService) Register(ctx context.Context, name, email, password string) (models.SessionUser, error) {
	if res := validators.ValidateName(name); !res.Valid {
		a.securityLog.Record(ctx, models.EventInvalidNameAttempt, map[string]any{"name": name, "email": email})
		return models.SessionUser{}, newValidationError(FieldName, res.Message)
	}

	if !validators.ValidateEmail(email) {
		a.securityLog.Record(ctx, models.EventInvalidEmailAttempt, map[string]any{"email": email})
		return models.SessionUser{}, ErrInvalidEmail
	}

	if res := validators.ValidatePassword(password); !res.Valid {
		a.securityLog.Record(ctx, models.EventWeakPasswordAttempt, map[string]any{"email": email})
		return models.SessionUser{}, newValidationError(FieldPassword, res.Message)
	}

	if !a.limiter.Allow(registerLimitPrefix+email, a.security.RegisterMaxAttempts, a.security.RegisterWindow) {
		a.securityLog.Record(ctx, models.EventRateLimitExceeded, map[string]any{"email": email, "action": "register"})
		return models.SessionUser{}, ErrTooManyRegisterAttempts
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	users := a.users.Users(ctx)
	if slices.ContainsFunc(users, func(u models.UserRecord) bool { return utils.SameEmail(u.Email, email) }) {
		a.securityLog.Record(ctx, models.EventRegisterFailedEmailExists, map[string]any{"email": email})
		return models.SessionUser{}, ErrUserAlreadyExists
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("error hashing password: %w", err)
	}

	record := models.UserRecord{
		ID:           a.ids.Generate(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         a.roleFor(users, name, email),
	}

	if err = a.users.SaveUsers(ctx, append(users, record)); err != nil {
		a.logger.Err(err).Str("func", "*authService.Register").Msg("error saving users")
		return models.SessionUser{}, storageError("users", err)
	}

	session := record.Session()
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "*authService.Register").Msg("error saving session")
		return models.SessionUser{}, storageError("session", err)
	}
	a.current = &session

	a.securityLog.Record(ctx, models.EventRegisterSuccess, map[string]any{
		"userId": record.ID,
		"email":  record.Email,
		"role":   string(record.Role),
	})

	return session, nil
}

// roleFor grants the admin role to the configured bootstrap identity while
// the profile has no admin yet. Everyone else is a user.
func (a *authService) roleFor(users []models.UserRecord, name, email string) models.Role {
	if a.seedAdmin.SeedAdminName == "" || a.seedAdmin.SeedAdminEmail == "" {
		return models.RoleUser
	}

	if !utils.SameEmail(name, a.seedAdmin.SeedAdminName) || !utils.SameEmail(email, a.seedAdmin.SeedAdminEmail) {
		return models.RoleUser
	}

	if slices.ContainsFunc(users, func(u models.UserRecord) bool { return u.Role == models.RoleAdmin }) {
		a.logger.Warn().Str("email", email).Msg("bootstrap admin identity registered after an admin exists, granting user role")
		return models.RoleUser
	}

	return models.RoleAdmin
}

// Login checks the email shape and the login limit, then the credentials.
// Unknown email and wrong password return the same error.
func (a *authService) Login(ctx context.Context, email, password string) (models.SessionUser, error) {
	if !validators.ValidateEmail(email) {
		a.securityLog.Record(ctx, models.EventInvalidEmailAttempt, map[string]any{"email": email})
		return models.SessionUser{}, ErrInvalidEmail
	}

	if !a.limiter.Allow(loginLimitPrefix+email, a.security.LoginMaxAttempts, a.security.LoginWindow) {
		a.securityLog.Record(ctx, models.EventRateLimitExceeded, map[string]any{"email": email, "action": "login"})
		return models.SessionUser{}, ErrTooManyLoginAttempts
	}

	users := a.users.Users(ctx)
	idx := slices.IndexFunc(users, func(u models.UserRecord) bool { return utils.SameEmail(u.Email, email) })
	if idx < 0 {
		a.securityLog.Record(ctx, models.EventLoginFailedUserNotFound, map[string]any{"email": email})
		return models.SessionUser{}, ErrInvalidCredentials
	}
	found := users[idx]

	if !a.hasher.Verify(password, found.PasswordHash) {
		a.securityLog.Record(ctx, models.EventLoginFailedWrongPassword, map[string]any{"email": email, "userId": found.ID})
		return models.SessionUser{}, ErrInvalidCredentials
	}

	session := found.Session()
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "*authService.Login").Msg("error saving session")
		return models.SessionUser{}, storageError("session", err)
	}

	a.mu.Lock()
	a.current = &session
	a.mu.Unlock()

	a.securityLog.Record(ctx, models.EventLoginSuccess, map[string]any{
		"userId": found.ID,
		"email":  found.Email,
		"role":   string(session.Role),
	})

	return session, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.mu.Lock()
	outgoing := a.current
	a.current = nil
	a.mu.Unlock()

	if outgoing != nil {
		a.securityLog.Record(ctx, models.EventLogout, map[string]any{"userId": outgoing.ID, "email": outgoing.Email})
	}

	if err := a.sessions.ClearSession(ctx); err != nil {
		a.logger.Err(err).Str("func", "*authService.Logout").Msg("error clearing session")
		return fmt.Errorf("error clearing session: %w", err)
	}

	return nil
}
