// Package util provides common utility functions.
package util

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Matches spaces, underscores, and slashes (for replacement with dashes).
	wordSeparatorRe = regexp.MustCompile(`[\s_/]+`)
	// Matches non-alphanumeric characters (except dashes).
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	// Matches multiple consecutive dashes.
	multipleDashRe = regexp.MustCompile(`-+`)
)

// Slugify converts a display name to a canonical URL slug. The slug is
// the public identity of poets, poems and genres, so the rules are
// strict:
//
//  1. Trim whitespace and lowercase
//  2. Replace spaces and underscores with dashes
//  3. Remove non-alphanumeric characters (except dashes)
//  4. Collapse multiple dashes
//  5. Trim leading/trailing dashes
//
// Examples:
//
//	"Mirza Ghalib"  → "mirza-ghalib"
//	"dil-e-nadaan"  → "dil-e-nadaan"
//	"  Faiz  Ahmed " → "faiz-ahmed"
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	return s
}

// SlugWithSuffix appends a numeric suffix for collision handling.
// Suffix 0 returns the base slug unchanged.
func SlugWithSuffix(base string, n int) string {
	if n <= 0 {
		return base
	}

	return fmt.Sprintf("%s-%d", base, n)
}
