// Package sanitize normalizes client-facing free-form input. It is flexible
// by contract: it trims and re-cases but never rejects, so quote calculation
// is never blocked by name/contact formatting.
package sanitize

import (
	"strings"
	"unicode"

	"github.com/ttacon/libphonenumber"
)

// NormalizeName trims and collapses whitespace on a client name. Single-case
// input (all caps or all lower) is re-cased to title case; mixed-case input
// is preserved as typed.
func NormalizeName(raw string) string {
	s := collapseSpaces(raw)
	if s == "" {
		return ""
	}
	if s == strings.ToUpper(s) || s == strings.ToLower(s) {
		return titleCase(s)
	}
	return s
}

// NormalizeContact trims a contact string and, when it parses as a valid
// Brazilian phone number, reformats it nationally. Anything else (emails,
// notes, partial numbers) passes through untouched.
func NormalizeContact(raw string) string {
	s := collapseSpaces(raw)
	if s == "" {
		return ""
	}
	num, err := libphonenumber.Parse(s, "BR")
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return s
	}
	return libphonenumber.Format(num, libphonenumber.NATIONAL)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func titleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		r := []rune(w)
		if len(r) == 0 {
			continue
		}
		// Short connectives stay lowercase, brazilian-name style.
		switch w {
		case "de", "da", "do", "das", "dos", "e":
			if i > 0 {
				continue
			}
		}
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
