// Package normalize transforms raw user input into canonical storage form.
//
// Every value is normalized exactly once, before validation and storage, so
// the database only ever sees canonical values: digits-only mobiles and
// lowercase emails. All functions are pure; the same input always yields the
// same output.
package normalize

import "strings"

// Name trims surrounding whitespace. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Email trims and lowercases, the canonical storage form for email addresses.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Mobile strips every non-digit rune, so "1234-5678", "1234 5678", and
// "(12) 34 56 78" all normalize to "12345678".
func Mobile(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
