// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "strings"

// htmlEscapes is applied in order; '&' must come first so the entities
// produced by later steps are not escaped again.
var htmlEscapes = [...][2]string{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&#x27;"},
	{"/", "&#x2F;"},
}

// SanitizeHTML escapes the six HTML-significant characters of s.
//
// The output is safe for HTML text and quoted attribute contexts only.
// It is not idempotent: sanitizing twice escapes the ampersands again.
func SanitizeHTML(s string) string {
	for _, pair := range htmlEscapes {
		s = strings.ReplaceAll(s, pair[0], pair[1])
	}
	return s
}
