package models

import (
	"regexp"
	"strings"
)

// User identifiers arrive in two admissible forms: a 24-character hexadecimal
// record key or an opaque string. Both must resolve to the same logical user,
// so hex keys are canonicalized to lowercase and everything else is taken as-is.

var hexKeyPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsHexKey reports whether id has the shape of a 24-hex record key.
func IsHexKey(id string) bool {
	return hexKeyPattern.MatchString(id)
}

// NormalizeUserKey returns the canonical lookup key for a user identifier.
// A malformed hex-looking string is not an error, it is simply an opaque key.
func NormalizeUserKey(id string) string {
	if IsHexKey(id) {
		return strings.ToLower(id)
	}
	return id
}

// UserKeyForms returns every stored form a lookup should match: the canonical
// key plus the raw identifier when the two differ.
func UserKeyForms(id string) []string {
	canonical := NormalizeUserKey(id)
	if canonical == id {
		return []string{canonical}
	}
	return []string{canonical, id}
}
