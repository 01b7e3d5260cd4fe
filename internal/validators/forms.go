// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cheat-catalog/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldName             = "Name"
	FieldURL              = "URL"
	FieldTags             = "Tags"
	FieldHomepageVideoURL = "HomepageVideoURL"

	tagHTTPURL  = "httpurl"
	tagVideoURL = "videourl"
)

// formErrors maps "<Struct>.<Field>.<tag>" of a failed rule to the error
// reported for it.
var formErrors = map[string]error{
	"GameForm.Name.min":                       ErrGameNameTooShort,
	"GameForm.Name.max":                       ErrGameNameTooLong,
	"CheatForm.Name.min":                      ErrCheatNameTooShort,
	"CheatForm.Name.max":                      ErrCheatNameTooLong,
	"CheatForm.URL.httpurl":                   ErrInvalidURL,
	"CheatForm.Tags.max":                      ErrTooManyTags,
	"SettingsForm.HomepageVideoURL.videourl": ErrInvalidVideoURL,
}

var knownFields = map[string]struct{}{
	FieldName:             {},
	FieldURL:              {},
	FieldTags:             {},
	FieldHomepageVideoURL: {},
}

// FormValidator validates admin forms with struct tags. Values are expected
// to be trimmed and sanitized already.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation(tagHTTPURL, func(fl validator.FieldLevel) bool {
		return ValidateURL(fl.Field().String())
	})
	_ = v.RegisterValidation(tagVideoURL, func(fl validator.FieldLevel) bool {
		return ValidateVideoURL(fl.Field().String())
	})

	return &FormValidator{validate: v}
}

// Validate checks a GameForm, CheatForm or SettingsForm (value or pointer).
// When fields are given only those are checked. The first failing rule, in
// field order, is returned.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.GameForm:
		return v.validateStruct(&value, fields...)
	case *models.GameForm:
		return v.validateStruct(value, fields...)

	case models.CheatForm:
		return v.validateStruct(&value, fields...)
	case *models.CheatForm:
		return v.validateStruct(value, fields...)

	case models.SettingsForm:
		return v.validateStruct(&value, fields...)
	case *models.SettingsForm:
		return v.validateStruct(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateStruct(obj any, fields ...string) error {
	for _, field := range fields {
		if _, ok := knownFields[field]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartial(obj, fields...)
	} else {
		err = v.validate.Struct(obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("form validation failed: %w", err)
	}

	first := validationErrors[0]
	if mapped, ok := formErrors[first.StructNamespace()+"."+first.Tag()]; ok {
		return mapped
	}

	return fmt.Errorf("form validation failed: %s", first.Error())
}
