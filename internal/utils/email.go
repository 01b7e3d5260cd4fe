// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldEmail returns the case-folded form of email used for comparisons.
// The stored email keeps its original casing.
func FoldEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// SameEmail reports whether a and b are the same address ignoring case.
func SameEmail(a, b string) bool {
	return FoldEmail(a) == FoldEmail(b)
}
