package validation

import (
	"net/mail"
	"regexp"
	"strings"
)

var multipleSpaces = regexp.MustCompile(`\s+`)

// IsValidEmail validates an email address using net/mail.ParseAddress, which
// implements RFC 5322's address grammar closely enough for spec.md §4.2's
// "RFC-5322-lite regex" requirement without hand-rolling a regex.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// NormalizeEmail trims and lowercases an email address, per ultra
// validation's email canonicalization (spec.md §4.2).
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName collapses internal whitespace runs and trims the ends.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	return multipleSpaces.ReplaceAllString(name, " ")
}

// urlSchemeRe detects an explicit http(s):// prefix.
var urlSchemeRe = regexp.MustCompile(`(?i)^https?://`)

// EnsureURLScheme prepends https:// when the URL has no http(s) scheme,
// returning the possibly-rewritten URL and whether a rewrite happened (the
// caller records a warning when it did, per spec.md §4.2).
func EnsureURLScheme(url string) (string, bool) {
	if url == "" {
		return url, false
	}
	if urlSchemeRe.MatchString(url) {
		return url, false
	}
	return "https://" + url, true
}
