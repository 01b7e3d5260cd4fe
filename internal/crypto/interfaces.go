// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential hasher and the CSRF token helper.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns a password into a self-describing salted encoding and
// checks candidates against it.
//
// The encoding is hex(salt) followed by hex(derived key); the salt prefix has
// a fixed length so Verify needs nothing but the encoded string.
type PasswordHasher interface {
	// Hash derives a fresh-salted encoding of password. Two calls with the
	// same password return different strings.
	// Returns an error only when the random source fails.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. Malformed encodings
	// yield false, never an error.
	Verify(password, encoded string) bool
}

// TokenIssuer issues and checks anti-forgery tokens for state-changing
// requests of the public API.
type TokenIssuer interface {
	// NewToken returns a fresh random token.
	NewToken() (string, error)

	// VerifyToken reports whether token equals expected. Empty values never match.
	VerifyToken(token, expected string) bool
}
