// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestPasswordHasher_Encoding(t *testing.T) {
	h := NewPasswordHasher(0)

	encoded, err := h.Hash("Passw0rdX")
	require.NoError(t, err)

	assert.Len(t, encoded, saltHexLen+keySize*2)
	_, err = hex.DecodeString(encoded)
	assert.NoError(t, err)
	assert.Equal(t, DefaultIterations, h.(*pbkdf2Hasher).iterations)
}

func TestPasswordHasher_SaltedEachTime(t *testing.T) {
	h := NewPasswordHasher(0)

	first, err := h.Hash("Passw0rdX")
	require.NoError(t, err)
	second, err := h.Hash("Passw0rdX")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("Passw0rdX", first))
	assert.True(t, h.Verify("Passw0rdX", second))
}

func TestPasswordHasher_Verify(t *testing.T) {
	h := NewPasswordHasher(0)
	encoded, err := h.Hash("Passw0rdX")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		encoded  string
		want     bool
	}{
		{name: "match", password: "Passw0rdX", encoded: encoded, want: true},
		{name: "wrong password", password: "Passw0rdY", encoded: encoded, want: false},
		{name: "empty encoding", password: "Passw0rdX", encoded: "", want: false},
		{name: "salt only", password: "Passw0rdX", encoded: encoded[:saltHexLen], want: false},
		{name: "non-hex salt", password: "Passw0rdX", encoded: strings.Repeat("z", saltHexLen) + encoded[saltHexLen:], want: false},
		{name: "truncated key", password: "Passw0rdX", encoded: encoded[:len(encoded)-2], want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.password, tt.encoded))
		})
	}
}

// PBKDF2-HMAC-SHA256 vector from RFC 7914, section 11 (first 32 bytes).
func TestPasswordHasher_KnownVector(t *testing.T) {
	h := &pbkdf2Hasher{iterations: 1}

	got := hex.EncodeToString(h.derive("passwd", []byte("salt")))

	assert.Equal(t, "55ac046e56e3089fec1691c22544b605f94185216dde0465e68b9d57c20dacbc", got)
}

func TestPasswordHasher_RandomFailure(t *testing.T) {
	h := &pbkdf2Hasher{iterations: 1, random: failingReader{}}

	encoded, err := h.Hash("Passw0rdX")
	require.Error(t, err)
	assert.Empty(t, encoded)
}

func TestPasswordHasher_RoundTripProperty(t *testing.T) {
	h := NewPasswordHasher(1000)

	rapid.Check(t, func(t *rapid.T) {
		password := rapid.String().Draw(t, "password")
		other := rapid.String().Filter(func(s string) bool { return s != password }).Draw(t, "other")

		encoded, err := h.Hash(password)
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		if !h.Verify(password, encoded) {
			t.Fatalf("verify(%q) = false for its own hash", password)
		}
		if h.Verify(other, encoded) {
			t.Fatalf("verify(%q) = true for hash of %q", other, password)
		}
	})
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer()

	token, err := issuer.NewToken()
	require.NoError(t, err)
	assert.Len(t, token, csrfTokenSize*2)

	another, err := issuer.NewToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, another)

	assert.True(t, issuer.VerifyToken(token, token))
	assert.False(t, issuer.VerifyToken(token, another))
	assert.False(t, issuer.VerifyToken("", ""))
	assert.False(t, issuer.VerifyToken(token, ""))
}

func TestTokenIssuer_RandomFailure(t *testing.T) {
	issuer := &csrfTokens{random: failingReader{}}

	_, err := issuer.NewToken()
	assert.Error(t, err)
}
