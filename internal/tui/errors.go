// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-cheat-catalog/internal/service"

// errCheatGone is shown when a cheat was deleted while its page was open.
var errCheatGone = service.ErrCheatNotFound
