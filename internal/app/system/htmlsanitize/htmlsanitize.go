// Package htmlsanitize strips markup from user-supplied text.
//
// Registration fields are plain text; anything that looks like HTML in a
// submitted name or surname is removed before validation and storage so the
// database never holds markup.
package htmlsanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripTags removes all HTML elements and attributes from s, returning the
// remaining text with entities decoded.
func StripTags(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}
