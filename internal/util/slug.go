package util

import (
	"strings"
	"unicode/utf8"

	goslug "github.com/gosimple/slug"
)

// Slugify derives the URL-safe identifier of a display name: lowercase,
// punctuation dropped, symbols like "&" spelled out, words joined by
// hyphens. The result is deterministic, the same name always yields the
// same slug.
func Slugify(name string) string {
	return goslug.Make(name)
}

// ValidateReferenceName enforces the shared lookup entity contract: a
// non-empty name no longer than maxLength characters after trimming.
func ValidateReferenceName(name string, maxLength int) bool {
	trimmed := strings.TrimSpace(name)
	length := utf8.RuneCountInString(trimmed)
	return length > 0 && length <= maxLength
}
