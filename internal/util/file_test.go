package util

import (
	"strings"
	"testing"
)

func TestAddUniquePrefixToFileName(t *testing.T) {
	filename := "testfile.txt"
	result := AddUniquePrefixToFileName(filename)

	if !strings.HasSuffix(result, "_testfile.txt") {
		t.Errorf("Expected filename to have unique prefix, got %s", result)
	}

	prefix := strings.Split(result, "_")[0]
	if len(prefix) == 0 {
		t.Errorf("Expected a non-empty unique prefix, got %s", prefix)
	}
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"Lowercase", "photo.jpg", "jpg"},
		{"Uppercase", "photo.JPG", "jpg"},
		{"Nested path", "images/123_photo.png", "png"},
		{"No extension", "README", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExtension(tt.ref); got != tt.want {
				t.Errorf("FileExtension(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestExtensionAllowed(t *testing.T) {
	allowed := []string{"jpg", "jpeg", "png"}

	if !ExtensionAllowed("images/photo.jpeg", allowed) {
		t.Error("expected .jpeg to be allowed")
	}
	if ExtensionAllowed("files/report.pdf", allowed) {
		t.Error("expected .pdf to be rejected for images")
	}
}

func TestSplitCommaSeparated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Simple", "a,b,c", []string{"a", "b", "c"}},
		{"Spaces trimmed", " ml , nlp ", []string{"ml", "nlp"}},
		{"Blank entries dropped", "a,,b,", []string{"a", "b"}},
		{"Empty string", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCommaSeparated(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitCommaSeparated(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitCommaSeparated(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
