// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor used when none is configured.
	DefaultIterations = 10000

	saltSize = 16 // 128 bits
	keySize  = 32 // 256 bits

	// saltHexLen is the length of the salt prefix inside an encoded hash.
	saltHexLen = saltSize * 2
)

// pbkdf2Hasher is the private implementation of [PasswordHasher]:
// PBKDF2-HMAC-SHA256 with a 128-bit salt and a 256-bit derived key.
type pbkdf2Hasher struct {
	iterations int
	random     io.Reader
}

// NewPasswordHasher returns a PBKDF2 [PasswordHasher]. A non-positive
// iteration count selects [DefaultIterations].
func NewPasswordHasher(iterations int) PasswordHasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &pbkdf2Hasher{
		iterations: iterations,
		random:     rand.Reader,
	}
}

func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := h.derive(password, salt)

	return hex.EncodeToString(salt) + hex.EncodeToString(key), nil
}

func (h *pbkdf2Hasher) Verify(password, encoded string) bool {
	if len(encoded) <= saltHexLen {
		return false
	}

	salt, err := hex.DecodeString(encoded[:saltHexLen])
	if err != nil {
		return false
	}

	expected := hex.EncodeToString(h.derive(password, salt))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(encoded[saltHexLen:])) == 1
}

func (h *pbkdf2Hasher) derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, h.iterations, keySize, sha256.New)
}
