package utils

import "github.com/google/uuid"

// NormalizeUUID returns the canonical lowercase form of s, accepting the
// braced form prlctl prints ("{xxxxxxxx-...}"). ok is false when s is not a uuid.
func NormalizeUUID(s string) (string, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// SameUUID reports whether a and b parse to the same uuid.
func SameUUID(a, b string) bool {
	na, ok := NormalizeUUID(a)
	if !ok {
		return false
	}
	nb, ok := NormalizeUUID(b)
	return ok && na == nb
}
