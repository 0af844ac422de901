package platform

import (
	"strings"
	"testing"
)

func TestIsSupportedImage(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"avatar.png", true},
		{"photo.JPG", true},
		{"pic.jpeg", true},
		{"animated.gif", true},
		{"modern.webp", true},
		{"document.pdf", false},
		{"video.mp4", false},
		{"noextension", false},
		{"", false},
	}

	for _, test := range tests {
		if got := IsSupportedImage(test.name); got != test.expected {
			t.Errorf("IsSupportedImage(%q) = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestReadImage(t *testing.T) {
	data, err := ReadImage("avatar.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("Expected file contents back, got %q", data)
	}
}

func TestReadImageRejectsUnsupportedType(t *testing.T) {
	if _, err := ReadImage("malware.exe", strings.NewReader("x")); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}

func TestReadImageRejectsEmptyFile(t *testing.T) {
	if _, err := ReadImage("avatar.png", strings.NewReader("")); err == nil {
		t.Error("Expected error for empty file")
	}
}

func TestReadImageRejectsOversizedFile(t *testing.T) {
	huge := strings.NewReader(strings.Repeat("a", MaxImageBytes+1))
	if _, err := ReadImage("avatar.png", huge); err == nil {
		t.Error("Expected error for file over the size cap")
	}
}
