// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// typed context keys, identifier generation, email folding and JSON
// response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-cheat-catalog/models"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// ClientInfoCtxKey stores the [models.ClientInfo] of the caller.
var ClientInfoCtxKey = contextKey("clientInfo")

// WithClientInfo returns a copy of ctx carrying info.
//
// The TUI stamps the current screen before each service call; the HTTP layer
// stamps the request's user agent and URL.
func WithClientInfo(ctx context.Context, info models.ClientInfo) context.Context {
	return context.WithValue(ctx, ClientInfoCtxKey, info)
}

// GetClientInfoFromContext retrieves the client info stored by [WithClientInfo].
// ok is false when nothing (or a value of another type) is stored.
func GetClientInfoFromContext(ctx context.Context) (models.ClientInfo, bool) {
	info, ok := ctx.Value(ClientInfoCtxKey).(models.ClientInfo)
	return info, ok
}
