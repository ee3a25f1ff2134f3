// Package stringutil provides small text helpers shared by the converter.
package stringutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	paraOpen  = "<p>"
	paraClose = "</p>"
)

// Clean strips a leading "<p>" and a trailing "</p>" from documentation text.
// If any other paragraph tag remains afterwards the original text is returned
// unchanged, since the markup is then structural rather than a wrapper.
func Clean(s string) string {
	out := strings.TrimPrefix(s, paraOpen)
	out = strings.TrimSuffix(out, paraClose)
	if strings.Contains(out, paraOpen) || strings.Contains(out, paraClose) {
		return s
	}
	return out
}

// UpperFirst upper-cases the first rune of s and leaves the rest untouched.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	caser := cases.Title(language.Und, cases.NoLower)
	return caser.String(s[:size]) + s[size:]
}

// JoinNonEmpty joins the non-empty elements of parts with sep.
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
