// Package util holds small shared helpers.
package util

import (
	"regexp"
	"strconv"
	"time"

	"github.com/gosimple/slug"
)

var slugTokenPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// GenerateSlug builds a URL-safe slug from the text with an optional suffix
// appended after a hyphen.
func GenerateSlug(text, suffix string) string {
	base := slug.Make(text)
	if suffix == "" {
		return base
	}
	if base == "" {
		return suffix
	}

	return base + "-" + suffix
}

// GenerateUniqueSlug builds a slug from the text with a base36 timestamp
// token appended, making collisions across creations at different instants
// impossible.
func GenerateUniqueSlug(text string, now time.Time) string {
	return GenerateSlug(text, strconv.FormatInt(now.UnixMilli(), 36))
}

// ValidSlugToken reports whether s is a path-safe slug token: lowercase
// alphanumeric runs separated by single hyphens.
func ValidSlugToken(s string) bool {
	return slugTokenPattern.MatchString(s)
}
