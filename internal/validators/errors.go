// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Admin form errors. Their text is shown to the admin as is.
var (
	ErrGameNameTooShort  = errors.New("Название игры должно содержать минимум 2 символа")
	ErrGameNameTooLong   = errors.New("Название игры слишком длинное")
	ErrCheatNameTooShort = errors.New("Название чита должно содержать минимум 2 символа")
	ErrCheatNameTooLong  = errors.New("Название чита слишком длинное")
	ErrInvalidURL        = errors.New("Некорректный URL")
	ErrTooManyTags       = errors.New("Слишком много тегов (максимум 10)")
	ErrInvalidVideoURL   = errors.New("Некорректная ссылка на YouTube")
)
