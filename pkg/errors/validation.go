package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxExportScale bounds the export up-scale factor. A 256 unit canvas at
// this scale is already a 8192x8192 raster.
const MaxExportScale = 32

// MaxCanvasSize bounds the base canvas edge length in surface units.
const MaxCanvasSize = 4096

// ValidateScale checks that an export scale factor is finite, positive and
// not larger than MaxExportScale.
func ValidateScale(k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return New(ErrCodeInvalidScale, "scale must be a finite number")
	}
	if k <= 0 {
		return New(ErrCodeInvalidScale, "scale must be positive, got %v", k)
	}
	if k > MaxExportScale {
		return New(ErrCodeInvalidScale, "scale too large (max %d), got %v", MaxExportScale, k)
	}
	return nil
}

// ValidateCanvasSize checks that a canvas edge length is usable.
func ValidateCanvasSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) || size < 1 {
		return New(ErrCodeInvalidInput, "canvas size must be at least 1, got %v", size)
	}
	if size > MaxCanvasSize {
		return New(ErrCodeInvalidInput, "canvas size too large (max %d), got %v", MaxCanvasSize, size)
	}
	return nil
}

// ValidateWidth checks that a brush width is finite and positive.
func ValidateWidth(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return New(ErrCodeInvalidWidth, "brush width must be positive, got %v", w)
	}
	return nil
}

// ValidateOutputPath validates a file path used for exported artifacts.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
