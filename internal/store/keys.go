// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Storage keys. They are part of the persisted layout and must not change.
const (
	KeyUsers       = "softpack:users:v1"
	KeySession     = "softpack:session:v1"
	KeyGames       = "softpack:games:v1"
	KeyCheats      = "softpack:cheats:v1"
	KeySettings    = "softpack:settings:v1"
	KeySecurityLog = "softpack:security_log:v1"
)
