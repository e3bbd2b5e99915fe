// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides small shared helpers: slug handling for static
// page URLs, sql.Null* conversions, and upload path safety checks.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Everything outside [a-z0-9-] gets stripped.
	slugStrip = regexp.MustCompile(`[^a-z0-9-]+`)
	// Hyphen runs collapse to one.
	slugHyphenRun = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL slug from a title. Accented characters are
// decomposed and their marks dropped, the rest is lowercased, spaces
// become hyphens, and anything left outside [a-z0-9-] is removed.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = strings.ReplaceAll(result, " ", "-")
	result = slugStrip.ReplaceAllString(result, "")
	result = slugHyphenRun.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// IsValidSlug reports whether s is already in canonical slug form:
// non-empty, lowercase alphanumerics and hyphens only, with no leading,
// trailing or doubled hyphen.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	return !strings.Contains(s, "--")
}
