package util

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Example output for "ex.txt": "V1StGXR8_Z5jdHi6B_ex.txt"
func AddUniquePrefixToFileName(fileName string) string {
	uniquePrefix, err := GenerateNChar(16)
	if err != nil {
		uniquePrefix = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%s_%s", uniquePrefix, fileName)
}

// FileExtension returns the lowercase extension of an asset reference
// without the leading dot. "photo.JPG" -> "jpg".
func FileExtension(ref string) string {
	ext := filepath.Ext(ref)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func ExtensionAllowed(ref string, allowed []string) bool {
	return slices.Contains(allowed, FileExtension(ref))
}

// SplitCommaSeparated parses the comma separated list format used by the
// project create/update endpoints for tags, authors, images and files.
// Blank entries are dropped.
func SplitCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
