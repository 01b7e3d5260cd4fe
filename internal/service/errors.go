// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every [*ValidationError] with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError is a rejected input. Message is shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
	// Err is the underlying validator error, if any.
	Err error
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is [ErrInvalidInput].
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Input fields named by [ValidationError.Field].
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldDownloads = "downloads"
	FieldForm      = "form"
)

// User-facing auth errors. Login failures share one message so the caller
// cannot tell an unknown email from a wrong password.
var (
	ErrInvalidEmail            = newValidationError(FieldEmail, "Некорректный email")
	ErrInvalidCredentials      = errors.New("Неверный email или пароль")
	ErrTooManyLoginAttempts    = errors.New("Слишком много попыток входа. Попробуйте позже.")
	ErrTooManyRegisterAttempts = errors.New("Слишком много попыток регистрации. Попробуйте позже.")
	ErrUserAlreadyExists       = errors.New("Пользователь с таким email уже существует")
)

var (
	// ErrAdminAccessDenied is returned by the admin surface for anonymous
	// and non-admin sessions.
	ErrAdminAccessDenied = errors.New("Доступ запрещён. Требуются права администратора.")

	// ErrNegativeDownloads rejects updates that would make a counter negative.
	ErrNegativeDownloads = newValidationError(FieldDownloads, "Количество загрузок не может быть отрицательным")

	ErrGameNotFound  = errors.New("Игра не найдена")
	ErrCheatNotFound = errors.New("Чит не найден")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// storageError wraps a persistence failure that is not the user's fault.
func storageError(op string, err error) error {
	return fmt.Errorf("error saving %s: %w", op, err)
}
