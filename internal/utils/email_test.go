// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameEmail(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "a@b.co", b: "a@b.co", want: true},
		{name: "mixed case", a: "Gademoff@Admin.com", b: "gademoff@admin.com", want: true},
		{name: "cyrillic case", a: "Иван@почта.рф", b: "иван@ПОЧТА.РФ", want: true},
		{name: "surrounding spaces", a: " a@b.co ", b: "a@b.co", want: true},
		{name: "different", a: "a@b.co", b: "b@b.co", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameEmail(tt.a, tt.b))
		})
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{})
	for range 100 {
		id := g.Generate()
		assert.Len(t, id, 36)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
