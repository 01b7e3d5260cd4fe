// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the public JSON API of the catalog.
//
// The API is read-only except for the download counter, which is guarded by
// a double-submit CSRF token and a per-client token bucket. Request tracing,
// access logging, client stamping for the security log, compression and
// Prometheus instrumentation are applied as middleware before requests reach
// the service layer.
package http
