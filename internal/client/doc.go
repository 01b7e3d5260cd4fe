// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the profile storage, services and terminal UI into a single
// process, and optionally serves the public catalog API next to the UI.
package client
