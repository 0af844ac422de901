package platform

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// MaxImageBytes caps the size of an image accepted for upload.
const MaxImageBytes = 8 << 20 // 8 MiB

// Image extensions the backend accepts
var supportedImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// IsSupportedImage reports whether the file name carries an accepted
// image extension.
func IsSupportedImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range supportedImageExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// ReadImage reads the picked file into memory, rejecting unsupported
// extensions and files over MaxImageBytes.
func ReadImage(name string, r io.Reader) ([]byte, error) {
	if !IsSupportedImage(name) {
		return nil, fmt.Errorf("unsupported image type: %s", filepath.Ext(name))
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image exceeds %d MiB limit", MaxImageBytes>>20)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image file is empty")
	}
	return data, nil
}
