// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagsN(n int) []string {
	tags := make([]string, n)
	for i := range tags {
		tags[i] = "tag" + strings.Repeat("x", i)
	}
	return tags
}

func TestFormValidator_GameForm(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		form    any
		wantErr error
	}{
		{name: "valid", form: models.GameForm{Name: "CS:GO"}},
		{name: "pointer", form: &models.GameForm{Name: "Valorant"}},
		{name: "empty name", form: models.GameForm{}, wantErr: ErrGameNameTooShort},
		{name: "one char", form: models.GameForm{Name: "X"}, wantErr: ErrGameNameTooShort},
		{name: "100 chars", form: models.GameForm{Name: strings.Repeat("g", 100)}},
		{name: "101 chars", form: models.GameForm{Name: strings.Repeat("g", 101)}, wantErr: ErrGameNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.form)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormValidator_CheatForm(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		form    models.CheatForm
		wantErr error
	}{
		{name: "valid without url", form: models.CheatForm{Name: "Aimbot Pro", Tags: tagsN(10)}},
		{name: "valid url", form: models.CheatForm{Name: "Aimbot Pro", URL: "https://example.com/a.zip"}},
		{name: "short name", form: models.CheatForm{Name: "A"}, wantErr: ErrCheatNameTooShort},
		{name: "long name", form: models.CheatForm{Name: strings.Repeat("c", 101)}, wantErr: ErrCheatNameTooLong},
		{name: "ftp url", form: models.CheatForm{Name: "Aimbot", URL: "ftp://example.com/a.zip"}, wantErr: ErrInvalidURL},
		{name: "eleven tags", form: models.CheatForm{Name: "Aimbot", Tags: tagsN(11)}, wantErr: ErrTooManyTags},
		{name: "name checked before url", form: models.CheatForm{Name: "A", URL: "nope"}, wantErr: ErrCheatNameTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.form)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormValidator_SettingsForm(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SettingsForm{}))
	assert.NoError(t, v.Validate(ctx, models.SettingsForm{HomepageVideoURL: "https://youtu.be/dQw4w9WgXcQ"}))
	assert.ErrorIs(t, v.Validate(ctx, models.SettingsForm{HomepageVideoURL: "https://vimeo.com/1"}), ErrInvalidVideoURL)
}

func TestFormValidator_Fields(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()
	form := models.CheatForm{Name: "A", URL: "https://example.com"}

	assert.NoError(t, v.Validate(ctx, form, FieldURL))
	assert.ErrorIs(t, v.Validate(ctx, form, FieldName), ErrCheatNameTooShort)

	err := v.Validate(ctx, form, "Downloads")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFormValidator_UnsupportedType(t *testing.T) {
	v := NewFormValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), models.Game{}), ErrUnsupportedType)
}
