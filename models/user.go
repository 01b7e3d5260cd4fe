// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the authorization level attached to an account.
type Role string

const (
	// RoleUser is the default role of every registered account.
	RoleUser Role = "user"
	// RoleAdmin grants access to the catalog management surface.
	RoleAdmin Role = "admin"
)

// Normalize returns r, or [RoleUser] when r is empty or unknown.
// Older user rows were persisted without a role field.
func (r Role) Normalize() Role {
	switch r {
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// UserRecord is the persisted account row. It holds the encoded credential
// hash and must never leave the storage and auth layers.
type UserRecord struct {
	// ID is a time-ordered unique identifier assigned at registration.
	ID string `json:"id"`

	// Name is the display name chosen at registration.
	Name string `json:"name"`

	// Email is stored as typed; lookups compare it case-insensitively.
	Email string `json:"email"`

	// PasswordHash is hex(salt) followed by hex(derived key).
	PasswordHash string `json:"password"`

	// Role defaults to [RoleUser] when missing in storage.
	Role Role `json:"role,omitempty"`
}

// Session projects the record to the public session shape.
func (u UserRecord) Session() SessionUser {
	return SessionUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role.Normalize(),
	}
}

// SessionUser is the authenticated identity of the current profile.
// It never carries credential material.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the session holds the admin role.
func (s SessionUser) IsAdmin() bool {
	return s.Role == RoleAdmin
}
