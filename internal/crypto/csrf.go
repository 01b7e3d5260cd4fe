// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
)

const csrfTokenSize = 32

type csrfTokens struct {
	random io.Reader
}

// NewTokenIssuer returns a [TokenIssuer] producing 32-byte hex tokens.
func NewTokenIssuer() TokenIssuer {
	return &csrfTokens{random: rand.Reader}
}

func (c *csrfTokens) NewToken() (string, error) {
	buf := make([]byte, csrfTokenSize)
	if _, err := io.ReadFull(c.random, buf); err != nil {
		return "", fmt.Errorf("error generating csrf token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (c *csrfTokens) VerifyToken(token, expected string) bool {
	if token == "" || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}
