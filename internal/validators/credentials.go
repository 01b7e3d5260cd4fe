// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"unicode/utf8"
)

// User-facing messages of the credential checks.
const (
	MsgPasswordTooShort   = "Пароль должен содержать минимум 8 символов"
	MsgPasswordTooLong    = "Пароль слишком длинный"
	MsgPasswordTooWeak    = "Пароль должен содержать заглавные буквы, строчные буквы и цифры"
	MsgNameTooShort       = "Имя должно содержать минимум 2 символа"
	MsgNameTooLong        = "Имя слишком длинное"
	MsgNameInvalidSymbols = "Имя содержит недопустимые символы"
)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	maxPasswordLength = 128
	minNameLength     = 2
	maxNameLength     = 50
)

// spaceClass matches ASCII and Unicode white space, including the byte order mark.
const spaceClass = `\s\v\p{Z}\x{FEFF}`

var (
	emailRegexp = regexp.MustCompile(`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`)
	nameRegexp  = regexp.MustCompile(`^[a-zA-Zа-яА-Я0-9` + spaceClass + `\-_]+$`)
)

// Result is the outcome of a credential check. Message is empty when Valid.
type Result struct {
	Valid   bool
	Message string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(message string) Result {
	return Result{Message: message}
}

// ValidateEmail reports whether email has the local@domain.tld shape and
// is at most 254 characters long.
func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email) && utf8.RuneCountInString(email) <= maxEmailLength
}

// ValidatePassword requires 8..128 characters with at least one lowercase
// ASCII letter, one uppercase ASCII letter and one digit.
func ValidatePassword(password string) Result {
	length := utf8.RuneCountInString(password)
	switch {
	case length < minPasswordLength:
		return invalid(MsgPasswordTooShort)
	case length > maxPasswordLength:
		return invalid(MsgPasswordTooLong)
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return invalid(MsgPasswordTooWeak)
	}

	return valid()
}

// ValidateName requires 2..50 characters of Latin or Cyrillic letters,
// digits, white space, '-' and '_'.
func ValidateName(name string) Result {
	length := utf8.RuneCountInString(name)
	switch {
	case length < minNameLength:
		return invalid(MsgNameTooShort)
	case length > maxNameLength:
		return invalid(MsgNameTooLong)
	case !nameRegexp.MatchString(name):
		return invalid(MsgNameInvalidSymbols)
	}

	return valid()
}
