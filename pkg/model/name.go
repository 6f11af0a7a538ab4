package model

import (
	"strings"
	"unicode"
)

// abbrevSuffix marks a chunk name as an abbreviation resolvable to the
// unique full name sharing its non-"..." prefix.
const abbrevSuffix = "..."

// CanonicalName whitespace-normalizes a raw chunk name: runs of whitespace
// collapse to a single space, and leading/trailing whitespace is trimmed.
// Two headers define the same chunk iff their canonical names are equal.
func CanonicalName(raw string) string {
	fields := strings.FieldsFunc(raw, unicode.IsSpace)
	return strings.Join(fields, " ")
}

// IsAbbreviation reports whether a canonical name is an abbreviation, i.e.
// ends in "..." with a non-empty prefix.
func IsAbbreviation(name string) bool {
	return strings.HasSuffix(name, abbrevSuffix) && len(name) > len(abbrevSuffix)
}

// abbreviationPrefix strips the trailing "..." from an abbreviated name.
func abbreviationPrefix(name string) string {
	return strings.TrimSuffix(name, abbrevSuffix)
}
