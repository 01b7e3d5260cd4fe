// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input checks of the catalog: credential
// predicates, URL and video URL checks, the HTML escaper and the admin
// form validator.
//
// Credential checks return a [Result] carrying a user-facing message; the
// form validator implements [Validator] and returns sentinel errors whose
// text is shown to the admin.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
