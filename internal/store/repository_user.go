// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
	"github.com/MKhiriev/go-cheat-catalog/models"
)

type userRepository struct {
	doc jsonDocument[[]models.UserRecord]
}

// NewUserRepository returns a [UserRepository] stored under [KeyUsers].
func NewUserRepository(kv KeyValueStorage, log *logger.Logger) UserRepository {
	return &userRepository{doc: jsonDocument[[]models.UserRecord]{kv: kv, key: KeyUsers, logger: log}}
}

// Users returns the stored accounts with roles normalised.
func (r *userRepository) Users(ctx context.Context) []models.UserRecord {
	users, ok := r.doc.read(ctx)
	if !ok || users == nil {
		return []models.UserRecord{}
	}

	for i := range users {
		users[i].Role = users[i].Role.Normalize()
	}
	return users
}

func (r *userRepository) SaveUsers(ctx context.Context, users []models.UserRecord) error {
	if users == nil {
		users = []models.UserRecord{}
	}
	return r.doc.write(ctx, users)
}

type sessionRepository struct {
	doc jsonDocument[*models.SessionUser]
}

// NewSessionRepository returns a [SessionRepository] stored under [KeySession].
func NewSessionRepository(kv KeyValueStorage, log *logger.Logger) SessionRepository {
	return &sessionRepository{doc: jsonDocument[*models.SessionUser]{kv: kv, key: KeySession, logger: log}}
}

func (r *sessionRepository) Session(ctx context.Context) *models.SessionUser {
	session, ok := r.doc.read(ctx)
	if !ok || session == nil || session.ID == "" {
		return nil
	}

	session.Role = session.Role.Normalize()
	return session
}

func (r *sessionRepository) SaveSession(ctx context.Context, user models.SessionUser) error {
	return r.doc.write(ctx, &user)
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	return r.doc.remove(ctx)
}
