// Package normalize removes scraping artifacts that pattern tables are a
// poor fit for: leaked HTML markup, encoded entities, and invisible
// characters. The helpers are pure functions and add no locale-aware
// behavior.
package normalize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var (
	markupPolicy = bluemonday.StrictPolicy()

	// zero-width spaces, joiners and BOM left behind by some scrapers
	zeroWidthReplacer = strings.NewReplacer(
		"​", "",
		"‌", "",
		"‍", "",
		"⁠", "",
		"\uFEFF", "",
	)

	// non-breaking space variants
	nbspReplacer = strings.NewReplacer(
		" ", " ",
		" ", " ",
		" ", " ",
	)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// StripMarkup removes any HTML tags from s, keeping their text content.
// Entities in the result remain encoded; see DecodeHTMLEntities.
func StripMarkup(s string) string {
	return markupPolicy.Sanitize(s)
}

// DecodeHTMLEntities decodes HTML entities such as "&amp;" and "&#39;".
func DecodeHTMLEntities(s string) string {
	return html.UnescapeString(s)
}

// RemoveZeroWidth removes zero-width characters and byte order marks.
func RemoveZeroWidth(s string) string {
	return zeroWidthReplacer.Replace(s)
}

// ReplaceNonBreakingSpaces replaces non-breaking space variants with plain
// ASCII spaces.
func ReplaceNonBreakingSpaces(s string) string {
	return nbspReplacer.Replace(s)
}

// CollapseWhitespace collapses runs of whitespace into single spaces and
// trims the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// All applies every cleanup in order: markup stripping, entity decoding,
// zero-width removal, non-breaking space replacement, and whitespace
// collapsing.
func All(s string) string {
	s = StripMarkup(s)
	s = DecodeHTMLEntities(s)
	s = RemoveZeroWidth(s)
	s = ReplaceNonBreakingSpaces(s)
	return CollapseWhitespace(s)
}
